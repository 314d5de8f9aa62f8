package update_table

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
	msgInvalidTableID     = "некорректный ID столика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "столик не найден"
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

// Handle PATCH /api/v1/tables/{tableId}
// Частичное обновление: меняются только поля, присутствующие в теле
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tableId из URL
	vars := mux.Vars(r)
	tableIDStr := vars["tableId"]

	tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req models.UpdateSeatingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), tableID, &req)
	if err != nil {
		switch {
		case errors.Is(err, seatings.ErrSeatingNotFound):
			h.logger.Warn("PATCH /tables/{id} - Table not found: seating_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, seatings.ErrInvalidInput):
			h.logger.Warn("PATCH /tables/{id} - Invalid input: seating_id=%d, error=%v", tableID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /tables/{id} - Failed to update table: seating_id=%d, error=%v",
				tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tables/{id} - Table updated successfully: seating_id=%d", tableID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
