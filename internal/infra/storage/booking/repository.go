package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	"github.com/Testforever-git/VMS-RentalService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"vehicle_id",
	"customer_id",
	"start_date",
	"end_date",
	"pickup_method",
	"pickup_store_id",
	"pickup_address",
	"pickup_lat",
	"pickup_lng",
	"dropoff_method",
	"dropoff_store_id",
	"dropoff_address",
	"dropoff_lat",
	"dropoff_lng",
	"price_snapshot",
	"access_token",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий журнала бронирований
// Журнал append-only: операций обновления и удаления нет, смена статуса
// принадлежит внешнему платёжному контуру
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование одним атомарным INSERT
// Snapshot сериализуется в JSON как есть: это точная копия расчёта на момент
// создания, независимая от последующих изменений каталога
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	snapshot, err := json.Marshal(b.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal snapshot: %v", ErrSnapshotCodec, err)
	}

	query, args, err := psqlbuilder.Insert("rental_bookings").
		Columns(
			"vehicle_id",
			"customer_id",
			"start_date",
			"end_date",
			"pickup_method",
			"pickup_store_id",
			"pickup_address",
			"pickup_lat",
			"pickup_lng",
			"dropoff_method",
			"dropoff_store_id",
			"dropoff_address",
			"dropoff_lat",
			"dropoff_lng",
			"price_snapshot",
			"access_token",
			"status",
		).
		Values(
			b.VehicleID,
			b.CustomerID,
			b.StartDate,
			b.EndDate,
			b.Pickup.Method,
			b.Pickup.StoreID,
			b.Pickup.Address,
			b.Pickup.Lat,
			b.Pickup.Lng,
			b.Dropoff.Method,
			b.Dropoff.StoreID,
			b.Dropoff.Address,
			b.Dropoff.Lat,
			b.Dropoff.Lng,
			snapshot,
			b.Token,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("%w: Create - token_prefix=%s", ErrTokenConflict, tokenPrefix(b.Token))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByToken получает бронирование по access token
// Токен - единственный ключ публичного доступа: никакой другой проверки прав нет
func (r *Repository) GetByToken(ctx context.Context, token domain.AccessToken) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("rental_bookings").
		Where(squirrel.Eq{"access_token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByCustomerID получает список бронирований клиента, сначала новые
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("rental_bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomerID - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// tokenPrefix обрезает access token для сообщений об ошибках:
// токен - bearer capability и целиком в ошибки и логи не попадает
func tokenPrefix(t domain.AccessToken) string {
	const visible = 8
	s := t.String()
	if len(s) <= visible {
		return s
	}
	return s[:visible] + "..."
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку бронирования и распаковывает snapshot
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		snapshot  []byte
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.VehicleID,
		&b.CustomerID,
		&b.StartDate,
		&b.EndDate,
		&b.Pickup.Method,
		&b.Pickup.StoreID,
		&b.Pickup.Address,
		&b.Pickup.Lat,
		&b.Pickup.Lng,
		&b.Dropoff.Method,
		&b.Dropoff.StoreID,
		&b.Dropoff.Address,
		&b.Dropoff.Lat,
		&b.Dropoff.Lng,
		&snapshot,
		&b.Token,
		&b.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(snapshot, &b.Snapshot); err != nil {
		return nil, fmt.Errorf("%w: unmarshal snapshot: %v", ErrSnapshotCodec, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
