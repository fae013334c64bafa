package store

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

var storeColumns = []string{
	"id",
	"name",
	"address",
	"postcode",
	"lat",
	"lng",
	"phone",
	"is_active",
}

// Repository read-only доступ к магазинам (точкам выдачи/возврата)
// Записи принадлежат подсистеме store/location
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория магазинов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает магазин по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	query, args, err := psqlbuilder.Select(storeColumns...).
		From("stores").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanStore(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan store: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListActive получает список активных магазинов
func (r *Repository) ListActive(ctx context.Context) ([]domain.Store, error) {
	query, args, err := psqlbuilder.Select(storeColumns...).
		From("stores").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stores := make([]domain.Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		stores = append(stores, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return stores, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanStore сканирует строку магазина; lat/lng собираются в Coordinate
// только когда оба значения заданы
func scanStore(row rowScanner) (*domain.Store, error) {
	var (
		s   domain.Store
		lat *float64
		lng *float64
	)

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&s.Postcode,
		&lat,
		&lng,
		&s.Phone,
		&s.IsActive,
	)
	if err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		s.Coordinate = &domain.Coordinate{Lat: *lat, Lng: *lng}
	}

	return &s, nil
}
