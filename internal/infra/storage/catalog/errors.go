package catalog

import "errors"

var (
	// ErrRateCardNotFound возвращается, когда у автомобиля нет карточки тарифов
	// Вызывающая сторона подставляет domain.DefaultRateCard
	ErrRateCardNotFound = errors.New("catalog.repository: rate card not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
