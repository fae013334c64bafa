package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	bookingRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/booking"
	vehicleRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/vehicle"
)

type fakeBookingRepo struct {
	byToken    map[domain.AccessToken]*domain.Booking
	byCustomer map[int64][]*domain.Booking
}

func (f *fakeBookingRepo) GetByToken(_ context.Context, token domain.AccessToken) (*domain.Booking, error) {
	b, ok := f.byToken[token]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64) ([]*domain.Booking, error) {
	return f.byCustomer[customerID], nil
}

type fakeVehicleRepo struct {
	vehicles map[int64]*domain.Vehicle
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return v, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(token domain.AccessToken) *domain.Booking {
	return &domain.Booking{
		ID:         5,
		VehicleID:  10,
		CustomerID: 77,
		StartDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Pickup:     domain.DeliveryLeg{Method: domain.MethodStore},
		Dropoff:    domain.DeliveryLeg{Method: domain.MethodStore},
		Snapshot:   domain.PriceSnapshot{RentalDays: 2, Currency: "JPY", EstimatedTotal: 22000},
		Token:      token,
		Status:     domain.StatusPending,
	}
}

func newTestService(token domain.AccessToken) *Service {
	bookings := &fakeBookingRepo{
		byToken:    map[domain.AccessToken]*domain.Booking{token: testBooking(token)},
		byCustomer: map[int64][]*domain.Booking{77: {testBooking(token)}},
	}
	vehicles := &fakeVehicleRepo{
		vehicles: map[int64]*domain.Vehicle{
			10: {ID: 10, VIN: "JT2BG22K0X0123456", BrandJP: "トヨタ", ModelJP: "カローラ"},
		},
	}
	return NewService(bookings, vehicles, nopLogger{})
}

func TestGetByToken(t *testing.T) {
	token := domain.AccessToken("a1b2c3")
	svc := newTestService(token)

	resp, err := svc.GetByToken(context.Background(), token.String())
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "2026-04-01", resp.StartDate)
	assert.Equal(t, int64(22000), resp.Snapshot.EstimatedTotal)
	require.NotNil(t, resp.Vehicle)
	assert.Equal(t, "トヨタ", resp.Vehicle.BrandJP)
}

func TestGetByToken_FabricatedTokenNotFound(t *testing.T) {
	svc := newTestService("a1b2c3")

	_, err := svc.GetByToken(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByToken_EmptyTokenNotFound(t *testing.T) {
	svc := newTestService("a1b2c3")

	_, err := svc.GetByToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByToken_MissingVehicleIsNotFatal(t *testing.T) {
	token := domain.AccessToken("a1b2c3")
	bookings := &fakeBookingRepo{
		byToken: map[domain.AccessToken]*domain.Booking{token: testBooking(token)},
	}
	svc := NewService(bookings, &fakeVehicleRepo{}, nopLogger{})

	resp, err := svc.GetByToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Nil(t, resp.Vehicle)
}

func TestGetByCustomerID(t *testing.T) {
	svc := newTestService("a1b2c3")

	resp, err := svc.GetByCustomerID(context.Background(), 77)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(77), resp.Bookings[0].CustomerID)
}

func TestGetByCustomerID_EmptyHistory(t *testing.T) {
	svc := newTestService("a1b2c3")

	resp, err := svc.GetByCustomerID(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}
