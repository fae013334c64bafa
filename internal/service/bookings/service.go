package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	bookingRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/booking"
	vehicleRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/vehicle"
	"github.com/Testforever-git/VMS-RentalService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// GetByToken получает бронирование по access token
// Токен - bearer capability: владение токеном и есть вся авторизация,
// никакой другой проверки прав не выполняется
func (s *Service) GetByToken(ctx context.Context, token string) (*models.BookingResponse, error) {
	if token == "" {
		return nil, ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByToken(ctx, domain.AccessToken(token))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: failed to get booking by token: %v", ErrInternal, err)
	}

	return s.toResponse(ctx, booking), nil
}

// GetByCustomerID получает историю бронирований клиента, сначала новые
func (s *Service) GetByCustomerID(ctx context.Context, customerID int64) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get customer bookings: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *s.toResponse(ctx, b))
	}

	return resp, nil
}

// toResponse конвертирует бронирование в DTO, обогащая данными автомобиля
// Отсутствие автомобиля не фатально: бронирование отдается без блока vehicle
func (s *Service) toResponse(ctx context.Context, b *domain.Booking) *models.BookingResponse {
	vehicle, err := s.vehicleRepo.GetByID(ctx, b.VehicleID)
	if err != nil {
		if !errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Bookings: failed to load vehicle id=%d for booking id=%d: %v", b.VehicleID, b.ID, err)
		}
		vehicle = nil
	}
	return models.FromDomainBooking(b, vehicle)
}
