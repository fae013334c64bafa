package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the lifecycle state of a rental booking.
// This core only ever writes StatusPending; transitions are owned by the
// payment/confirmation flow outside of it.
type BookingStatus string

const (
	StatusPending         BookingStatus = "pending"
	StatusAwaitingPayment BookingStatus = "awaiting_payment"
	StatusConfirmed       BookingStatus = "confirmed"
	StatusCancelled       BookingStatus = "cancelled"
)

// DeliveryMethod is how a rental leg (pickup or drop-off) is handled.
type DeliveryMethod string

const (
	MethodStore   DeliveryMethod = "store"
	MethodAddress DeliveryMethod = "address"
)

// ParseDeliveryMethod converts a request string into a delivery method.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch DeliveryMethod(s) {
	case MethodStore, MethodAddress:
		return DeliveryMethod(s), nil
	default:
		return "", fmt.Errorf("unknown delivery method %q", s)
	}
}

// DeliveryLeg describes one side of the rental: either a store reference or
// a free-form address with coordinates.
type DeliveryLeg struct {
	Method  DeliveryMethod
	StoreID *int64
	Address *string
	Lat     *float64
	Lng     *float64
}

// Coordinate returns the leg's coordinates, or nil when either is absent.
func (l DeliveryLeg) Coordinate() *Coordinate {
	if l.Lat == nil || l.Lng == nil {
		return nil
	}
	return &Coordinate{Lat: *l.Lat, Lng: *l.Lng}
}

// Booking is one persisted rental quote. Except for the externally managed
// status it is immutable after creation.
type Booking struct {
	ID         int64
	VehicleID  int64
	CustomerID int64
	StartDate  time.Time
	EndDate    time.Time
	Pickup     DeliveryLeg
	Dropoff    DeliveryLeg
	Snapshot   PriceSnapshot
	Token      AccessToken
	Status     BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled reports whether the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// RentalDays counts rental days inclusive of both endpoints, with a floor of
// one day. Same-day and inverted ranges both count as a single day; inverted
// ranges are documented behavior, not rejected.
func RentalDays(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	days := int(endDay.Sub(startDay)/(24*time.Hour)) + 1
	if days < 1 {
		return 1
	}
	return days
}
