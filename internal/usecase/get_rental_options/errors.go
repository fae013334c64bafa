package get_rental_options

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("get_rental_options: vehicle not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_rental_options: internal error")
)
