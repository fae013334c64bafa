package models

import (
	"time"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
)

// DeliveryLegResponse описание одной стороны аренды в ответе
type DeliveryLegResponse struct {
	Method  string   `json:"method"`
	StoreID *int64   `json:"storeId,omitempty"`
	Address *string  `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// VehicleInfo отображаемые данные автомобиля
type VehicleInfo struct {
	ID        int64  `json:"id"`
	VIN       string `json:"vin"`
	BrandJP   string `json:"brandJp"`
	BrandCN   string `json:"brandCn"`
	ModelJP   string `json:"modelJp"`
	ModelCN   string `json:"modelCn"`
	ModelYear *int   `json:"modelYear,omitempty"`
}

// BookingResponse ответ с данными бронирования
// PriceSnapshot отдается ровно в том виде, в каком был сохранен:
// это неизменяемая копия расчета, а не перерасчет по текущему каталогу
type BookingResponse struct {
	ID         int64                `json:"id"`
	VehicleID  int64                `json:"vehicleId"`
	CustomerID int64                `json:"customerId"`
	StartDate  string               `json:"startDate"` // "2026-04-01"
	EndDate    string               `json:"endDate"`
	Pickup     DeliveryLegResponse  `json:"pickup"`
	Dropoff    DeliveryLegResponse  `json:"dropoff"`
	Snapshot   domain.PriceSnapshot `json:"priceSnapshot"`
	Token      string               `json:"accessToken"`
	Status     string               `json:"status"`
	Vehicle    *VehicleInfo         `json:"vehicle,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, vehicle *domain.Vehicle) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:         b.ID,
		VehicleID:  b.VehicleID,
		CustomerID: b.CustomerID,
		StartDate:  b.StartDate.Format(domain.DateFormat),
		EndDate:    b.EndDate.Format(domain.DateFormat),
		Pickup:     fromDomainLeg(b.Pickup),
		Dropoff:    fromDomainLeg(b.Dropoff),
		Snapshot:   b.Snapshot,
		Token:      b.Token.String(),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if vehicle != nil {
		resp.Vehicle = &VehicleInfo{
			ID:        vehicle.ID,
			VIN:       vehicle.VIN,
			BrandJP:   vehicle.BrandJP,
			BrandCN:   vehicle.BrandCN,
			ModelJP:   vehicle.ModelJP,
			ModelCN:   vehicle.ModelCN,
			ModelYear: vehicle.ModelYear,
		}
	}

	return resp
}

func fromDomainLeg(leg domain.DeliveryLeg) DeliveryLegResponse {
	return DeliveryLegResponse{
		Method:  string(leg.Method),
		StoreID: leg.StoreID,
		Address: leg.Address,
		Lat:     leg.Lat,
		Lng:     leg.Lng,
	}
}
