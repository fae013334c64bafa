package get_rental_options

import "github.com/Testforever-git/VMS-RentalService/internal/domain"

// Response данные для формы расчета аренды одного автомобиля:
// карточка тарифов (или дефолты), активные услуги, магазины и тиры доставки
type Response struct {
	Vehicle  domain.Vehicle
	RateCard domain.RateCard
	Services []domain.ServiceCatalogEntry
	Stores   []domain.Store
	FeeTiers []domain.DeliveryFeeTier

	// HomeStoreID магазин, от которого считаются расстояния доставки
	HomeStoreID int64
}
