package create_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	catalogRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/catalog"
	vehicleRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/vehicle"
)

// UseCase use case расчета квоты аренды и записи бронирования
//
// Чтения каталога и финальный INSERT намеренно не обёрнуты в одну транзакцию:
// snapshot отражает состояние каталога на момент расчета ("best effort"),
// конкурентное административное изменение цен между чтением и записью
// допустимо. Сама запись бронирования - один атомарный INSERT
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	storeRepo   StoreRepository
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	storeRepo StoreRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		storeRepo:   storeRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Execute рассчитывает квоту и создает бронирование
// Любая ошибка валидации прерывает выполнение до какой-либо записи:
// частичное бронирование не создается никогда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateQuote: vehicle=%d, customer=%d, start=%s, end=%s, pickup=%s, dropoff=%s, services=%d",
		req.VehicleID, req.CustomerID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.Pickup.Method, req.Dropoff.Method, len(req.ServiceIDs))

	// 1. Валидация дат
	if err := validateDates(req); err != nil {
		uc.logger.Warn("CreateQuote: date validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация способов выдачи и возврата
	pickupMethod, err := validateLeg("pickup", req.Pickup)
	if err != nil {
		uc.logger.Warn("CreateQuote: pickup validation failed: %v", err)
		return nil, err
	}
	dropoffMethod, err := validateLeg("dropoff", req.Dropoff)
	if err != nil {
		uc.logger.Warn("CreateQuote: dropoff validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем автомобиль
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateQuote: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateQuote: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 4. Карточка тарифов: при отсутствии все суммы 0, налог по умолчанию
	card, err := uc.catalogRepo.GetRateCard(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRateCardNotFound) {
			uc.logger.Info("CreateQuote: no rate card for vehicle id=%d, using defaults", req.VehicleID)
			defaultCard := domain.DefaultRateCard(req.VehicleID)
			card = &defaultCard
		} else {
			uc.logger.Error("CreateQuote: failed to get rate card for vehicle id=%d: %v", req.VehicleID, err)
			return nil, fmt.Errorf("%w: failed to get rate card: %v", ErrInternal, err)
		}
	}

	// 5. Число дней аренды: включительно по обоим концам, минимум один день
	rentalDays := domain.RentalDays(req.StartDate, req.EndDate)

	// 6. Опорная точка: домашний магазин автомобиля или fallback
	home, err := uc.resolveHomeStore(ctx, vehicle)
	if err != nil {
		uc.logger.Error("CreateQuote: failed to resolve home store: %v", err)
		return nil, err
	}

	// 7. Активные тиры платы за доставку, свежие на каждый запрос
	tiers, err := uc.catalogRepo.ListActiveDeliveryFeeTiers(ctx)
	if err != nil {
		uc.logger.Error("CreateQuote: failed to list delivery fee tiers: %v", err)
		return nil, fmt.Errorf("%w: failed to list delivery fee tiers: %v", ErrInternal, err)
	}

	// 8. Разрешаем каждую сторону аренды независимо
	pickup, err := uc.resolveLeg(ctx, "pickup", pickupMethod, req.Pickup, home, tiers)
	if err != nil {
		uc.logger.Warn("CreateQuote: pickup leg resolution failed: %v", err)
		return nil, err
	}
	dropoff, err := uc.resolveLeg(ctx, "dropoff", dropoffMethod, req.Dropoff, home, tiers)
	if err != nil {
		uc.logger.Warn("CreateQuote: dropoff leg resolution failed: %v", err)
		return nil, err
	}

	// 9. Строки дополнительных услуг
	services, err := uc.catalogRepo.ListActiveServices(ctx)
	if err != nil {
		uc.logger.Error("CreateQuote: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}
	lines, serviceTotal := buildServiceLines(req.ServiceIDs, services, rentalDays)

	// 10. Итоговый snapshot
	snapshot := buildSnapshot(card, rentalDays, pickup, dropoff, lines, serviceTotal, req.Note)

	uc.logger.Info("CreateQuote: computed snapshot: days=%d, pickup_fee=%d, dropoff_fee=%d, service_total=%d, total=%d %s",
		rentalDays, pickup.fee, dropoff.fee, serviceTotal, snapshot.EstimatedTotal, snapshot.Currency)

	// 11. Генерируем access token
	token, err := domain.GenerateAccessToken()
	if err != nil {
		uc.logger.Error("CreateQuote: failed to generate access token: %v", err)
		return nil, fmt.Errorf("%w: failed to generate access token: %v", ErrInternal, err)
	}

	// 12. Записываем бронирование одним атомарным INSERT
	booking := &domain.Booking{
		VehicleID:  req.VehicleID,
		CustomerID: req.CustomerID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Pickup:     pickup.leg,
		Dropoff:    dropoff.leg,
		Snapshot:   snapshot,
		Token:      token,
		Status:     domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateQuote: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateQuote: booking id=%d created for customer=%d", created.ID, created.CustomerID)

	return &Response{
		ID:         created.ID,
		VehicleID:  created.VehicleID,
		CustomerID: created.CustomerID,
		StartDate:  created.StartDate,
		EndDate:    created.EndDate,
		Pickup:     created.Pickup,
		Dropoff:    created.Dropoff,
		Snapshot:   created.Snapshot,
		Token:      created.Token,
		Status:     string(created.Status),
		CreatedAt:  created.CreatedAt,
		UpdatedAt:  created.UpdatedAt,
	}, nil
}
