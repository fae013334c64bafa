package create_quote

import (
	"time"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	createQuote "github.com/Testforever-git/VMS-RentalService/internal/usecase/create_quote"
)

// LegRequest HTTP модель одной стороны аренды (выдача или возврат)
type LegRequest struct {
	Method  string   `json:"method"`
	StoreID *int64   `json:"storeId,omitempty"`
	Address *string  `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// CreateQuoteRequest HTTP request model
type CreateQuoteRequest struct {
	VehicleID  int64      `json:"vehicleId"`
	StartDate  string     `json:"startDate"` // "2026-04-01"
	EndDate    string     `json:"endDate"`   // "2026-04-03"
	Pickup     LegRequest `json:"pickup"`
	Dropoff    LegRequest `json:"dropoff"`
	ServiceIDs []int64    `json:"serviceIds,omitempty"`
	Note       *string    `json:"note,omitempty"`
}

// DeliveryLegResponse HTTP модель стороны аренды в ответе
type DeliveryLegResponse struct {
	Method  string   `json:"method"`
	StoreID *int64   `json:"storeId,omitempty"`
	Address *string  `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ID            int64                `json:"id"`
	VehicleID     int64                `json:"vehicleId"`
	CustomerID    int64                `json:"customerId"`
	StartDate     string               `json:"startDate"`
	EndDate       string               `json:"endDate"`
	Pickup        DeliveryLegResponse  `json:"pickup"`
	Dropoff       DeliveryLegResponse  `json:"dropoff"`
	Status        string               `json:"status"`
	AccessToken   string               `json:"accessToken"`
	PriceSnapshot domain.PriceSnapshot `json:"priceSnapshot"`
	CreatedAt     string               `json:"createdAt"`
	UpdatedAt     string               `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые строки дат оставляем нулевым временем: use case вернет ErrMissingDates
func (r *CreateQuoteRequest) ToUseCaseRequest(customerID int64) (*createQuote.Request, error) {
	var startDate, endDate time.Time
	var err error

	if r.StartDate != "" {
		startDate, err = time.Parse(domain.DateFormat, r.StartDate)
		if err != nil {
			return nil, err
		}
	}
	if r.EndDate != "" {
		endDate, err = time.Parse(domain.DateFormat, r.EndDate)
		if err != nil {
			return nil, err
		}
	}

	return &createQuote.Request{
		VehicleID:  r.VehicleID,
		CustomerID: customerID,
		StartDate:  startDate,
		EndDate:    endDate,
		Pickup:     toLegRequest(r.Pickup),
		Dropoff:    toLegRequest(r.Dropoff),
		ServiceIDs: r.ServiceIDs,
		Note:       r.Note,
	}, nil
}

func toLegRequest(leg LegRequest) createQuote.LegRequest {
	return createQuote.LegRequest{
		Method:  leg.Method,
		StoreID: leg.StoreID,
		Address: leg.Address,
		Lat:     leg.Lat,
		Lng:     leg.Lng,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		ID:            resp.ID,
		VehicleID:     resp.VehicleID,
		CustomerID:    resp.CustomerID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		Pickup:        fromDomainLeg(resp.Pickup),
		Dropoff:       fromDomainLeg(resp.Dropoff),
		Status:        resp.Status,
		AccessToken:   resp.Token.String(),
		PriceSnapshot: resp.Snapshot,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
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
