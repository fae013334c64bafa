package create_quote

import (
	"context"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogRepository интерфейс read-only доступа к каталогу тарифов
type CatalogRepository interface {
	GetRateCard(ctx context.Context, vehicleID int64) (*domain.RateCard, error)
	ListActiveServices(ctx context.Context) ([]domain.ServiceCatalogEntry, error)
	ListActiveDeliveryFeeTiers(ctx context.Context) ([]domain.DeliveryFeeTier, error)
}

// StoreRepository интерфейс read-only доступа к магазинам
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
}

// VehicleRepository интерфейс read-only доступа к автомобилям автопарка
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
