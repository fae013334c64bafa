package get_rental_options

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	catalogRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/catalog"
	vehicleRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/vehicle"
	"github.com/Testforever-git/VMS-RentalService/pkg/ptr"
)

type fakeCatalogRepo struct {
	card    *domain.RateCard
	cardErr error
}

func (f *fakeCatalogRepo) GetRateCard(_ context.Context, _ int64) (*domain.RateCard, error) {
	if f.cardErr != nil {
		return nil, f.cardErr
	}
	return f.card, nil
}

func (f *fakeCatalogRepo) ListActiveServices(_ context.Context) ([]domain.ServiceCatalogEntry, error) {
	return []domain.ServiceCatalogEntry{
		{ID: 1, Code: "child_seat", Name: "チャイルドシート", PricingType: domain.PricingPerBooking, Price: 1000, IsActive: true},
	}, nil
}

func (f *fakeCatalogRepo) ListActiveDeliveryFeeTiers(_ context.Context) ([]domain.DeliveryFeeTier, error) {
	return []domain.DeliveryFeeTier{
		{ID: 1, MinKm: 0, MaxKm: ptr.Ptr(5.0), FeeAmount: 1000, IsActive: true},
	}, nil
}

type fakeStoreRepo struct{}

func (fakeStoreRepo) ListActive(_ context.Context) ([]domain.Store, error) {
	return []domain.Store{
		{ID: 1, Name: "本店（東京）", IsActive: true},
		{ID: 2, Name: "新宿店", IsActive: true},
	}, nil
}

type fakeVehicleRepo struct {
	vehicle *domain.Vehicle
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, _ int64) (*domain.Vehicle, error) {
	if f.vehicle == nil {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return f.vehicle, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_AggregatesFormData(t *testing.T) {
	catalog := &fakeCatalogRepo{
		card: &domain.RateCard{VehicleID: 10, Currency: "JPY", DailyPrice: 8000, TaxRate: 10.00},
	}
	vehicles := &fakeVehicleRepo{
		vehicle: &domain.Vehicle{ID: 10, VIN: "JT2BG22K0X0123456", GarageStoreID: ptr.Ptr(int64(2))},
	}
	uc := NewUseCase(catalog, fakeStoreRepo{}, vehicles, nopLogger{})

	resp, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.Vehicle.ID)
	assert.Equal(t, int64(8000), resp.RateCard.DailyPrice)
	assert.Len(t, resp.Services, 1)
	assert.Len(t, resp.Stores, 2)
	assert.Len(t, resp.FeeTiers, 1)
	assert.Equal(t, int64(2), resp.HomeStoreID)
}

func TestExecute_NoRateCardSubstitutesDefaults(t *testing.T) {
	catalog := &fakeCatalogRepo{cardErr: catalogRepo.ErrRateCardNotFound}
	vehicles := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 10}}
	uc := NewUseCase(catalog, fakeStoreRepo{}, vehicles, nopLogger{})

	resp, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCurrency, resp.RateCard.Currency)
	assert.Equal(t, domain.DefaultTaxRate, resp.RateCard.TaxRate)
	assert.Equal(t, int64(0), resp.RateCard.DailyPrice)

	// Без настроенного гаража опорной точкой служит fallback магазин
	assert.Equal(t, domain.FallbackStore.ID, resp.HomeStoreID)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{}, fakeStoreRepo{}, &fakeVehicleRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), 404)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
