package delete_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/seatings"
)

const (
	msgInvalidTableID = "некорректный ID столика"
	msgNotFound       = "столик не найден"
	msgInUse          = "столик используется незавершёнными бронированиями"
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

// Handle DELETE /api/v1/tables/{tableId}
// Отказывает, пока на столик ссылаются незавершённые бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tableId из URL
	vars := mux.Vars(r)
	tableIDStr := vars["tableId"]

	tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	if err := h.service.Delete(r.Context(), tableID); err != nil {
		switch {
		case errors.Is(err, seatings.ErrSeatingNotFound):
			h.logger.Warn("DELETE /tables/{id} - Table not found: seating_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, seatings.ErrSeatingInUse):
			h.logger.Warn("DELETE /tables/{id} - Table in use: seating_id=%d", tableID)
			handlers.RespondConflict(w, msgInUse)

		default:
			h.logger.Error("DELETE /tables/{id} - Failed to delete table: seating_id=%d, error=%v",
				tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted successfully: seating_id=%d", tableID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
