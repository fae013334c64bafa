package create_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	storeRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/store"
)

// resolveHomeStore определяет опорную точку расчета расстояний:
// домашний магазин автомобиля или захардкоженный fallback, если магазин
// не настроен или его запись отсутствует
func (uc *UseCase) resolveHomeStore(ctx context.Context, vehicle *domain.Vehicle) (*domain.Store, error) {
	if vehicle.GarageStoreID == nil {
		home := domain.FallbackStore
		return &home, nil
	}

	home, err := uc.storeRepo.GetByID(ctx, *vehicle.GarageStoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Warn("CreateQuote: garage store id=%d missing for vehicle id=%d, using fallback store",
				*vehicle.GarageStoreID, vehicle.ID)
			fallback := domain.FallbackStore
			return &fallback, nil
		}
		return nil, fmt.Errorf("%w: failed to get garage store: %v", ErrInternal, err)
	}

	return home, nil
}

// resolveLeg рассчитывает плату за одну сторону аренды
//
//   - address: расстояние от опорной точки до координат клиента, плата по тирам;
//   - store, отличный от домашнего: расстояние между магазинами, плата по тирам,
//     затем скидка 50% (с усечением) за перегон между магазинами;
//   - store, совпадающий с домашним: плата 0, расстояние неизвестно.
func (uc *UseCase) resolveLeg(
	ctx context.Context,
	side string,
	method domain.DeliveryMethod,
	req LegRequest,
	home *domain.Store,
	tiers []domain.DeliveryFeeTier,
) (*resolvedLeg, error) {
	if method == domain.MethodAddress {
		coord := &domain.Coordinate{Lat: *req.Lat, Lng: *req.Lng}
		distance := domain.DistanceBetween(home.Coordinate, coord)
		fee := domain.ResolveDeliveryFee(tiers, distance)

		label := ""
		if req.Address != nil {
			label = *req.Address
		}

		return &resolvedLeg{
			leg: domain.DeliveryLeg{
				Method:  domain.MethodAddress,
				Address: req.Address,
				Lat:     req.Lat,
				Lng:     req.Lng,
			},
			fee:      fee,
			distance: distance,
			label:    label,
		}, nil
	}

	// Выбранный магазин: явный ID из запроса либо домашний магазин автомобиля
	chosen := home
	if req.StoreID != nil && *req.StoreID != home.ID {
		s, err := uc.storeRepo.GetByID(ctx, *req.StoreID)
		if err != nil {
			if errors.Is(err, storeRepo.ErrStoreNotFound) {
				return nil, fmt.Errorf("%w: %s: store id=%d not found", ErrInvalidDeliveryMethod, side, *req.StoreID)
			}
			return nil, fmt.Errorf("%w: failed to get %s store: %v", ErrInternal, side, err)
		}
		chosen = s
	}

	leg := domain.DeliveryLeg{
		Method:  domain.MethodStore,
		StoreID: &chosen.ID,
	}

	// Домашний магазин: бесплатно, расстояние неприменимо
	if chosen.ID == home.ID {
		return &resolvedLeg{
			leg:      leg,
			distance: domain.UnknownDistance(),
			label:    chosen.Name,
		}, nil
	}

	distance := domain.DistanceBetween(home.Coordinate, chosen.Coordinate)
	fee := domain.ResolveDeliveryFee(tiers, distance) / domain.StoreRelocationFeeDivisor

	return &resolvedLeg{
		leg:      leg,
		fee:      fee,
		distance: distance,
		label:    chosen.Name,
	}, nil
}

// buildServiceLines формирует строки дополнительных услуг
// Неизвестные и неактивные ID молча пропускаются - преднамеренно мягкая
// политика к входным данным. Только per_day умножается на число дней аренды;
// per_booking, per_hour и per_unit берутся одной фиксированной суммой
func buildServiceLines(serviceIDs []int64, services []domain.ServiceCatalogEntry, rentalDays int) ([]domain.ServiceLine, int64) {
	byID := make(map[int64]domain.ServiceCatalogEntry, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	lines := make([]domain.ServiceLine, 0, len(serviceIDs))
	seen := make(map[int64]bool, len(serviceIDs))
	var total int64

	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true

		lineTotal := svc.Price
		if svc.PricingType == domain.PricingPerDay {
			lineTotal = svc.Price * int64(rentalDays)
		}

		lines = append(lines, domain.ServiceLine{
			ServiceID:   svc.ID,
			Code:        svc.Code,
			Name:        svc.Name,
			PricingType: svc.PricingType,
			UnitPrice:   svc.Price,
			Total:       lineTotal,
		})
		total += lineTotal
	}

	return lines, total
}

// buildSnapshot собирает итоговый неизменяемый snapshot цены
//
// subtotal = (daily_price + insurance_per_day) * rental_days + cleaning_fee +
// pickup_fee + dropoff_fee + service_total; estimated_total = subtotal.
// tax_rate фиксируется для отображения, но в сумму не входит
func buildSnapshot(
	card *domain.RateCard,
	rentalDays int,
	pickup, dropoff *resolvedLeg,
	lines []domain.ServiceLine,
	serviceTotal int64,
	note *string,
) domain.PriceSnapshot {
	subtotal := (card.DailyPrice+card.InsurancePerDay)*int64(rentalDays) +
		card.CleaningFee +
		pickup.fee +
		dropoff.fee +
		serviceTotal

	return domain.PriceSnapshot{
		RentalDays:      rentalDays,
		Currency:        card.Currency,
		DailyPrice:      card.DailyPrice,
		InsurancePerDay: card.InsurancePerDay,
		CleaningFee:     card.CleaningFee,
		DepositAmount:   card.DepositAmount,

		PickupFee:         pickup.fee,
		DropoffFee:        dropoff.fee,
		PickupDistanceKm:  distanceKmPtr(pickup.distance),
		DropoffDistanceKm: distanceKmPtr(dropoff.distance),
		PickupLabel:       pickup.label,
		DropoffLabel:      dropoff.label,

		Services:     lines,
		ServiceTotal: serviceTotal,

		TaxRate:        card.TaxRate,
		EstimatedTotal: subtotal,

		Note: note,
	}
}

func distanceKmPtr(d domain.Distance) *float64 {
	if !d.Known {
		return nil
	}
	km := d.Km
	return &km
}
