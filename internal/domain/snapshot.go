package domain

// ServiceLine is one priced ancillary service inside a snapshot.
type ServiceLine struct {
	ServiceID   int64              `json:"service_id"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	PricingType ServicePricingType `json:"pricing_type"`
	UnitPrice   int64              `json:"unit_price"`
	Total       int64              `json:"total"`
}

// PriceSnapshot is the immutable, point-in-time price breakdown of a quote.
// It is a copy of catalog data at computation time, serialized into the
// booking row as JSON, and is never re-derived from live catalog state.
//
// EstimatedTotal equals the subtotal; TaxRate is captured for display but is
// deliberately not applied to the total.
type PriceSnapshot struct {
	RentalDays      int     `json:"rental_days"`
	Currency        string  `json:"currency"`
	DailyPrice      int64   `json:"daily_price"`
	InsurancePerDay int64   `json:"insurance_per_day"`
	CleaningFee     int64   `json:"cleaning_fee"`
	DepositAmount   int64   `json:"deposit_amount"`

	PickupFee         int64    `json:"pickup_fee"`
	DropoffFee        int64    `json:"dropoff_fee"`
	PickupDistanceKm  *float64 `json:"pickup_distance_km"`
	DropoffDistanceKm *float64 `json:"dropoff_distance_km"`
	PickupLabel       string   `json:"pickup_label"`
	DropoffLabel      string   `json:"dropoff_label"`

	Services     []ServiceLine `json:"services"`
	ServiceTotal int64         `json:"service_total"`

	TaxRate        float64 `json:"tax_rate"`
	EstimatedTotal int64   `json:"estimated_total"`

	Note *string `json:"note"`
}
