package create_quote

import "errors"

var (
	// ErrMissingDates возвращается, когда не указана дата начала или окончания аренды
	ErrMissingDates = errors.New("create_quote: start and end dates are required")

	// ErrInvalidDeliveryMethod возвращается при некорректном способе выдачи/возврата:
	// неизвестный метод, адрес без координат или неразрешимый магазин
	ErrInvalidDeliveryMethod = errors.New("create_quote: invalid delivery method")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_quote: vehicle not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_quote: internal error")
)
