package bookings

import (
	"context"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetByToken(ctx context.Context, token domain.AccessToken) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Booking, error)
}

// VehicleRepository интерфейс read-only доступа к автомобилям
// Используется для обогащения ответов отображаемыми данными автомобиля
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
