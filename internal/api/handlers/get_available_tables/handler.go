package get_available_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	availableTables "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_tables"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidQueryParams  = "некорректные параметры запроса"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	useCase GetAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/available-tables?partySize=&date=&time=
// Список столиков, свободных на запрошенное окно. Результат - подсказка:
// финальная проверка конфликтов выполняется при создании бронирования.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// 1. Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// 2. Парсим query параметры
	query := r.URL.Query()
	req, err := ToUseCaseRequest(restaurantID, query.Get("partySize"), query.Get("date"), query.Get("time"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid query params: restaurant_id=%d, error=%v",
			restaurantID, err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	// 3. Выполняем usecase
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availableTables.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/available-tables - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, availableTables.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /restaurants/{id}/available-tables - Failed to get available tables: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/available-tables - Retrieved successfully: restaurant_id=%d, count=%d",
		restaurantID, len(result.Tables))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
