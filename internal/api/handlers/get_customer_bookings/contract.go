package get_customer_bookings

import (
	"context"

	"github.com/Testforever-git/VMS-RentalService/internal/service/bookings/models"
)

type BookingsService interface {
	GetByCustomerID(ctx context.Context, customerID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
