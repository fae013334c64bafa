package vehicle

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

// Repository read-only проекция автомобилей автопарка
// Читает денормализованное представление v_vehicles_i18n, которым владеет
// подсистема управления автопарком
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает автомобиль по ID вместе с его домашним магазином
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"vin",
		"brand_jp",
		"brand_cn",
		"model_jp",
		"model_cn",
		"model_year_ad",
		"garage_store_id",
	).
		From("v_vehicles_i18n").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Vehicle
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.VIN,
		&v.BrandJP,
		&v.BrandCN,
		&v.ModelJP,
		&v.ModelCN,
		&v.ModelYear,
		&v.GarageStoreID,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	return &v, nil
}
