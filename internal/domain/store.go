package domain

// Store is a physical location used as a delivery reference point.
// Owned by the store/location subsystem; read-only here.
type Store struct {
	ID         int64
	Name       string
	Address    string
	Postcode   *string
	Coordinate *Coordinate
	Phone      *string
	IsActive   bool
}

// Vehicle is the read-only projection of a fleet vehicle that the quote
// engine needs: identity, display names and the home store.
type Vehicle struct {
	ID            int64
	VIN           string
	BrandJP       string
	BrandCN       string
	ModelJP       string
	ModelCN       string
	ModelYear     *int
	GarageStoreID *int64
}
