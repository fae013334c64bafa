package get_rental_options

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Testforever-git/VMS-RentalService/internal/api/handlers"
	getRentalOptions "github.com/Testforever-git/VMS-RentalService/internal/usecase/get_rental_options"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	useCase GetRentalOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetRentalOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/rental-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{vehicleId}/rental-options - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, getRentalOptions.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{vehicleId}/rental-options - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /vehicles/{vehicleId}/rental-options - Failed to get options: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{vehicleId}/rental-options - Options retrieved: vehicle_id=%d", vehicleID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
