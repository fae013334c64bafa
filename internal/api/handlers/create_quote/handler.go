package create_quote

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Testforever-git/VMS-RentalService/internal/api/handlers"
	"github.com/Testforever-git/VMS-RentalService/internal/api/middleware"
	createQuote "github.com/Testforever-git/VMS-RentalService/internal/usecase/create_quote"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDates          = "не указаны даты начала и окончания аренды"
	msgInvalidDeliveryMethod = "некорректный способ выдачи или возврата"
	msgVehicleNotFound       = "автомобиль не найден"
	msgUnauthorized          = "требуется авторизация"
)

type Handler struct {
	useCase CreateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CreateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rental-quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /rental-quotes - Missing customer ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rental-quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /rental-quotes - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createQuote.ErrMissingDates):
			h.logger.Warn("POST /rental-quotes - Missing dates: customer_id=%d, vehicle_id=%d", customerID, req.VehicleID)
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, createQuote.ErrInvalidDeliveryMethod):
			h.logger.Warn("POST /rental-quotes - Invalid delivery method: customer_id=%d, vehicle_id=%d", customerID, req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidDeliveryMethod)

		case errors.Is(err, createQuote.ErrVehicleNotFound):
			h.logger.Warn("POST /rental-quotes - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("POST /rental-quotes - Failed to create quote: customer_id=%d, vehicle_id=%d, error=%v",
				customerID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /rental-quotes - Quote created successfully: booking_id=%d, customer_id=%d, vehicle_id=%d",
		result.ID, customerID, req.VehicleID)
	w.Header().Set("Location", fmt.Sprintf("/api/v1/rental-quotes/%s", result.Token))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
