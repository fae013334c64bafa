package domain

import "fmt"

// ServicePricingType tells how an ancillary service's price is applied to a
// quote. Only PricingPerDay scales with the rental length; the other types
// are charged once at their catalog price.
type ServicePricingType string

const (
	PricingPerBooking ServicePricingType = "per_booking"
	PricingPerDay     ServicePricingType = "per_day"
	PricingPerHour    ServicePricingType = "per_hour"
	PricingPerUnit    ServicePricingType = "per_unit"
)

// ParseServicePricingType converts a catalog string into a pricing type.
func ParseServicePricingType(s string) (ServicePricingType, error) {
	t := ServicePricingType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown service pricing type %q", s)
	}
	return t, nil
}

// IsValid reports whether the pricing type is one of the known values.
func (t ServicePricingType) IsValid() bool {
	switch t {
	case PricingPerBooking, PricingPerDay, PricingPerHour, PricingPerUnit:
		return true
	default:
		return false
	}
}

// RateCard is the per-vehicle price configuration read from the catalog.
// Amounts are whole currency units. The mileage fields are nullable in the
// catalog and stay nil when the row carries no value.
type RateCard struct {
	VehicleID       int64
	Currency        string
	DailyPrice      int64
	DepositAmount   int64
	InsurancePerDay int64
	FreeKmPerDay    *int64
	ExtraKmPrice    *int64
	CleaningFee     int64
	LateFeePerDay   int64
	TaxRate         float64 // percent
}

// DefaultRateCard is the zero-priced card substituted when a vehicle has no
// catalog entry. Quoting still works; every component just prices at zero.
func DefaultRateCard(vehicleID int64) RateCard {
	return RateCard{
		VehicleID: vehicleID,
		Currency:  DefaultCurrency,
		TaxRate:   DefaultTaxRate,
	}
}

// ServiceCatalogEntry is one ancillary service offered with a rental.
type ServiceCatalogEntry struct {
	ID          int64
	Code        string
	Name        string
	PricingType ServicePricingType
	Price       int64
	Currency    string
	IsActive    bool
}

// DeliveryFeeTier maps a distance band to a flat delivery fee. The band is
// half-open: MinKm is inclusive, MaxKm is exclusive, so a boundary distance
// belongs to the next tier. A nil MaxKm means the band is unbounded above.
type DeliveryFeeTier struct {
	ID        int64
	MinKm     float64
	MaxKm     *float64
	FeeAmount int64
	Currency  string
	IsActive  bool
}

// Contains reports whether the distance falls inside the tier's band.
func (t DeliveryFeeTier) Contains(km float64) bool {
	if km < t.MinKm {
		return false
	}
	return t.MaxKm == nil || km < *t.MaxKm
}

// ResolveDeliveryFee picks the fee of the first tier containing the
// distance. Tiers are expected in ascending min_km order; overlaps resolve
// to the earlier tier. An unknown distance or no matching tier costs zero.
func ResolveDeliveryFee(tiers []DeliveryFeeTier, d Distance) int64 {
	if !d.Known {
		return 0
	}
	for _, tier := range tiers {
		if tier.Contains(d.Km) {
			return tier.FeeAmount
		}
	}
	return 0
}
