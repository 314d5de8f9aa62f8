package get_restaurant_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidParams       = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/bookings
// Query params: seatingId, status, startDate, endDate, customerEmail, includeTerminal (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/bookings - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Собираем запрос из query параметров
	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		restaurantID,
		query.Get("seatingId"),
		query.Get("status"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("customerEmail"),
		query.Get("includeTerminal"),
	)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetRestaurantBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/bookings - Invalid filter: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /restaurants/{id}/bookings - Failed to get bookings: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/bookings - Bookings retrieved successfully: restaurant_id=%d, count=%d",
		restaurantID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
