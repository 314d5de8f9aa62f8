package get_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/seatings"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidQueryParams  = "некорректные параметры запроса"
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

// Handle GET /api/v1/restaurants/{restaurantId}/tables?activeOnly=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Парсим activeOnly из query (по умолчанию false - отдаем весь каталог)
	activeOnly := false
	if activeOnlyStr := r.URL.Query().Get("activeOnly"); activeOnlyStr != "" {
		activeOnly, err = strconv.ParseBool(activeOnlyStr)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/tables - Invalid activeOnly param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)
			return
		}
	}

	result, err := h.service.List(r.Context(), restaurantID, activeOnly)
	if err != nil {
		switch {
		case errors.Is(err, seatings.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/tables - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/tables - Failed to get tables: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/tables - Retrieved successfully: restaurant_id=%d, count=%d",
		restaurantID, len(result.Seatings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
