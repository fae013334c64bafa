package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Testforever-git/VMS-RentalService/internal/api/handlers"
	"github.com/Testforever-git/VMS-RentalService/internal/service/bookings"
)

const (
	msgBookingNotFound = "бронирование не найдено"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rental-quotes/{token}
// Токен в пути - единственная авторизация: знание токена дает доступ к бронированию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	result, err := h.service.GetByToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /rental-quotes/{token} - Booking not found")
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /rental-quotes/{token} - Failed to get booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rental-quotes/{token} - Booking retrieved: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
