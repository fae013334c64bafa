package get_rental_options

import (
	"context"

	getRentalOptions "github.com/Testforever-git/VMS-RentalService/internal/usecase/get_rental_options"
)

type GetRentalOptionsUseCase interface {
	Execute(ctx context.Context, vehicleID int64) (*getRentalOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
