package get_customer_bookings

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Testforever-git/VMS-RentalService/internal/api/handlers"
	"github.com/Testforever-git/VMS-RentalService/internal/api/middleware"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgUnauthorized      = "требуется авторизация"
	msgForbidden         = "доступ к чужим бронированиям запрещен"
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

// Handle GET /api/v1/customers/{customerId}/bookings
// Клиент видит только собственную историю бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authCustomerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/{customerId}/bookings - Missing customer ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{customerId}/bookings - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	if customerID != authCustomerID {
		h.logger.Warn("GET /customers/{customerId}/bookings - Forbidden: auth_customer_id=%d, requested_customer_id=%d",
			authCustomerID, customerID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetByCustomerID(r.Context(), customerID)
	if err != nil {
		h.logger.Error("GET /customers/{customerId}/bookings - Failed to get bookings: customer_id=%d, error=%v",
			customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/{customerId}/bookings - Bookings retrieved: customer_id=%d, count=%d",
		customerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
