package get_booking_by_code

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings"
)

const (
	msgInvalidCode = "некорректный код подтверждения"
	msgNotFound    = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/by-code/{code}
// Гостевой поиск бронирования по коду подтверждения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	booking, err := h.service.GetByConfirmationCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/by-code/{code} - Malformed code: %q", code)
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/by-code/{code} - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/by-code/{code} - Failed to get booking: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/by-code/{code} - Booking retrieved successfully: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
