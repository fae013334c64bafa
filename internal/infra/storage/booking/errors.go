package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrTokenConflict возвращается при нарушении уникальности access token
	// Повторная генерация не выполняется: вероятность коллизии 256-битного
	// токена пренебрежимо мала, поэтому конфликт считается внутренней ошибкой
	ErrTokenConflict = errors.New("booking.repository: access token already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrSnapshotCodec возвращается при ошибке сериализации price snapshot
	ErrSnapshotCodec = errors.New("booking.repository: failed to encode/decode price snapshot")
)
