package get_rental_options

import (
	"context"
	"errors"
	"fmt"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	catalogRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/catalog"
	vehicleRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/vehicle"
)

// UseCase use case публичной выдачи данных для формы расчета аренды
// Только чтения, никакой записи
type UseCase struct {
	catalogRepo CatalogRepository
	storeRepo   StoreRepository
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	storeRepo StoreRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		storeRepo:   storeRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Execute собирает данные формы расчета для одного автомобиля
func (uc *UseCase) Execute(ctx context.Context, vehicleID int64) (*Response, error) {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("GetRentalOptions: vehicle id=%d not found", vehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("GetRentalOptions: failed to get vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	card, err := uc.catalogRepo.GetRateCard(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRateCardNotFound) {
			defaultCard := domain.DefaultRateCard(vehicleID)
			card = &defaultCard
		} else {
			uc.logger.Error("GetRentalOptions: failed to get rate card for vehicle id=%d: %v", vehicleID, err)
			return nil, fmt.Errorf("%w: failed to get rate card: %v", ErrInternal, err)
		}
	}

	services, err := uc.catalogRepo.ListActiveServices(ctx)
	if err != nil {
		uc.logger.Error("GetRentalOptions: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	stores, err := uc.storeRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetRentalOptions: failed to list stores: %v", err)
		return nil, fmt.Errorf("%w: failed to list stores: %v", ErrInternal, err)
	}

	tiers, err := uc.catalogRepo.ListActiveDeliveryFeeTiers(ctx)
	if err != nil {
		uc.logger.Error("GetRentalOptions: failed to list delivery fee tiers: %v", err)
		return nil, fmt.Errorf("%w: failed to list delivery fee tiers: %v", ErrInternal, err)
	}

	homeStoreID := domain.FallbackStore.ID
	if vehicle.GarageStoreID != nil {
		homeStoreID = *vehicle.GarageStoreID
	}

	return &Response{
		Vehicle:     *vehicle,
		RateCard:    *card,
		Services:    services,
		Stores:      stores,
		FeeTiers:    tiers,
		HomeStoreID: homeStoreID,
	}, nil
}
