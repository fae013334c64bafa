package get_rental_options

import (
	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	getRentalOptions "github.com/Testforever-git/VMS-RentalService/internal/usecase/get_rental_options"
)

// VehicleResponse данные автомобиля для формы расчета
type VehicleResponse struct {
	ID        int64  `json:"id"`
	VIN       string `json:"vin"`
	BrandJP   string `json:"brandJp"`
	BrandCN   string `json:"brandCn"`
	ModelJP   string `json:"modelJp"`
	ModelCN   string `json:"modelCn"`
	ModelYear *int   `json:"modelYear,omitempty"`
}

// RateCardResponse тарифы автомобиля
type RateCardResponse struct {
	Currency        string  `json:"currency"`
	DailyPrice      int64   `json:"dailyPrice"`
	DepositAmount   int64   `json:"depositAmount"`
	InsurancePerDay int64   `json:"insurancePerDay"`
	FreeKmPerDay    *int64  `json:"freeKmPerDay,omitempty"`
	ExtraKmPrice    *int64  `json:"extraKmPrice,omitempty"`
	CleaningFee     int64   `json:"cleaningFee"`
	LateFeePerDay   int64   `json:"lateFeePerDay"`
	TaxRate         float64 `json:"taxRate"`
}

// ServiceResponse дополнительная услуга каталога
type ServiceResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	PricingType string `json:"pricingType"`
}

// StoreResponse магазин выдачи/возврата
type StoreResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Postcode *string  `json:"postcode,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
}

// FeeTierResponse тир стоимости доставки по расстоянию
type FeeTierResponse struct {
	MinKm     float64  `json:"minKm"`
	MaxKm     *float64 `json:"maxKm,omitempty"`
	FeeAmount int64    `json:"feeAmount"`
}

// RentalOptionsResponse HTTP response model
type RentalOptionsResponse struct {
	Vehicle     VehicleResponse   `json:"vehicle"`
	RateCard    RateCardResponse  `json:"rateCard"`
	Services    []ServiceResponse `json:"services"`
	Stores      []StoreResponse   `json:"stores"`
	FeeTiers    []FeeTierResponse `json:"feeTiers"`
	HomeStoreID int64             `json:"homeStoreId"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRentalOptions.Response) *RentalOptionsResponse {
	out := &RentalOptionsResponse{
		Vehicle: VehicleResponse{
			ID:        resp.Vehicle.ID,
			VIN:       resp.Vehicle.VIN,
			BrandJP:   resp.Vehicle.BrandJP,
			BrandCN:   resp.Vehicle.BrandCN,
			ModelJP:   resp.Vehicle.ModelJP,
			ModelCN:   resp.Vehicle.ModelCN,
			ModelYear: resp.Vehicle.ModelYear,
		},
		RateCard: RateCardResponse{
			Currency:        resp.RateCard.Currency,
			DailyPrice:      resp.RateCard.DailyPrice,
			DepositAmount:   resp.RateCard.DepositAmount,
			InsurancePerDay: resp.RateCard.InsurancePerDay,
			FreeKmPerDay:    resp.RateCard.FreeKmPerDay,
			ExtraKmPrice:    resp.RateCard.ExtraKmPrice,
			CleaningFee:     resp.RateCard.CleaningFee,
			LateFeePerDay:   resp.RateCard.LateFeePerDay,
			TaxRate:         resp.RateCard.TaxRate,
		},
		Services:    make([]ServiceResponse, 0, len(resp.Services)),
		Stores:      make([]StoreResponse, 0, len(resp.Stores)),
		FeeTiers:    make([]FeeTierResponse, 0, len(resp.FeeTiers)),
		HomeStoreID: resp.HomeStoreID,
	}

	for _, svc := range resp.Services {
		out.Services = append(out.Services, ServiceResponse{
			ID:          svc.ID,
			Name:        svc.Name,
			Price:       svc.Price,
			PricingType: string(svc.PricingType),
		})
	}

	for _, store := range resp.Stores {
		out.Stores = append(out.Stores, fromDomainStore(store))
	}

	for _, tier := range resp.FeeTiers {
		out.FeeTiers = append(out.FeeTiers, FeeTierResponse{
			MinKm:     tier.MinKm,
			MaxKm:     tier.MaxKm,
			FeeAmount: tier.FeeAmount,
		})
	}

	return out
}

func fromDomainStore(store domain.Store) StoreResponse {
	resp := StoreResponse{
		ID:       store.ID,
		Name:     store.Name,
		Address:  store.Address,
		Postcode: store.Postcode,
		Phone:    store.Phone,
	}
	if store.Coordinate != nil {
		resp.Lat = &store.Coordinate.Lat
		resp.Lng = &store.Coordinate.Lng
	}
	return resp
}
