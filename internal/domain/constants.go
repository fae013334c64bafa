package domain

// Defaults applied when catalog data is absent
const (
	DefaultCurrency = "JPY"
	DefaultTaxRate  = 10.00 // percent
)

// Store-to-store relocation costs half the address-delivery tier fee,
// truncated to whole currency units
const StoreRelocationFeeDivisor = 2

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// FallbackStore подставной "домашний" магазин для автомобилей без настроенного
// garage store: головной офис у Токийского вокзала
var FallbackStore = Store{
	ID:         1,
	Name:       "本店（東京）",
	Address:    "東京都千代田区丸の内1-9-1",
	Coordinate: &Coordinate{Lat: 35.6812, Lng: 139.7671},
	IsActive:   true,
}
