package create_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/seatings"
	"github.com/m04kA/SMC-ReservationService/internal/service/seatings/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	service SeatingService
	logger  Logger
}

func NewHandler(service SeatingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{restaurantId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req models.CreateSeatingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), restaurantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, seatings.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/tables - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, seatings.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/tables - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /restaurants/{id}/tables - Failed to create table: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/tables - Table created successfully: restaurant_id=%d, seating_id=%d",
		restaurantID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
