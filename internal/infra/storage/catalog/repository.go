package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	"github.com/Testforever-git/VMS-RentalService/pkg/dbmetrics"
	"github.com/Testforever-git/VMS-RentalService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов, поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

// Repository read-only доступ к каталогу тарифов: карточки тарифов,
// дополнительные услуги и тиры платы за доставку. Записи принадлежат
// административной подсистеме каталога; здесь только point-in-time чтение,
// без какого-либо кэширования между запросами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRateCard получает карточку тарифов автомобиля
func (r *Repository) GetRateCard(ctx context.Context, vehicleID int64) (*domain.RateCard, error) {
	query, args, err := psqlbuilder.Select(
		"vehicle_id",
		"currency",
		"daily_price",
		"deposit_amount",
		"insurance_per_day",
		"free_km_per_day",
		"extra_km_price",
		"cleaning_fee",
		"late_fee_per_day",
		"tax_rate",
	).
		From("rental_vehicle_pricing").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRateCard - build select query: %v", ErrBuildQuery, err)
	}

	var card domain.RateCard
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&card.VehicleID,
		&card.Currency,
		&card.DailyPrice,
		&card.DepositAmount,
		&card.InsurancePerDay,
		&card.FreeKmPerDay,
		&card.ExtraKmPrice,
		&card.CleaningFee,
		&card.LateFeePerDay,
		&card.TaxRate,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRateCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRateCard - scan rate card: %v", ErrScanRow, err)
	}

	return &card, nil
}

// ListActiveServices получает список активных дополнительных услуг
func (r *Repository) ListActiveServices(ctx context.Context) ([]domain.ServiceCatalogEntry, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"name",
		"pricing_type",
		"price",
		"currency",
		"is_active",
	).
		From("rental_service_catalog").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.ServiceCatalogEntry, 0)
	for rows.Next() {
		var svc domain.ServiceCatalogEntry
		err := rows.Scan(
			&svc.ID,
			&svc.Code,
			&svc.Name,
			&svc.PricingType,
			&svc.Price,
			&svc.Currency,
			&svc.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListActiveDeliveryFeeTiers получает активные тиры платы за доставку
// в порядке возрастания min_km - порядок, в котором резолвер ищет первое
// совпадение. Читается заново на каждый запрос, тиры могут меняться
func (r *Repository) ListActiveDeliveryFeeTiers(ctx context.Context) ([]domain.DeliveryFeeTier, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"min_km",
		"max_km",
		"fee_amount",
		"currency",
		"is_active",
	).
		From("rental_delivery_fee_tiers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("min_km ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveDeliveryFeeTiers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveDeliveryFeeTiers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tiers := make([]domain.DeliveryFeeTier, 0)
	for rows.Next() {
		var tier domain.DeliveryFeeTier
		err := rows.Scan(
			&tier.ID,
			&tier.MinKm,
			&tier.MaxKm,
			&tier.FeeAmount,
			&tier.Currency,
			&tier.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveDeliveryFeeTiers - scan row: %v", ErrScanRow, err)
		}
		tiers = append(tiers, tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveDeliveryFeeTiers - rows error: %v", ErrScanRow, err)
	}

	return tiers, nil
}
