package create_quote

import (
	"time"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
)

// LegRequest описание одной стороны аренды (выдача или возврат)
type LegRequest struct {
	Method  string   // "store" или "address"
	StoreID *int64   // ID магазина (опционально; по умолчанию домашний магазин автомобиля)
	Address *string  // Текст адреса при method = "address"
	Lat     *float64 // Координаты адреса
	Lng     *float64
}

// Request модель запроса на расчет и создание квоты аренды
type Request struct {
	VehicleID  int64      // ID автомобиля
	CustomerID int64      // ID клиента
	StartDate  time.Time  // Дата начала аренды (без времени)
	EndDate    time.Time  // Дата окончания аренды (включительно)
	Pickup     LegRequest // Выдача
	Dropoff    LegRequest // Возврат
	ServiceIDs []int64    // Выбранные дополнительные услуги
	Note       *string    // Комментарий клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	VehicleID  int64
	CustomerID int64
	StartDate  time.Time
	EndDate    time.Time
	Pickup     domain.DeliveryLeg
	Dropoff    domain.DeliveryLeg
	Snapshot   domain.PriceSnapshot
	Token      domain.AccessToken
	Status     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// resolvedLeg результат разрешения одной стороны аренды
type resolvedLeg struct {
	leg      domain.DeliveryLeg
	fee      int64
	distance domain.Distance
	label    string
}
