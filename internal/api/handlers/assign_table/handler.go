package assign_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	assignTable "github.com/m04kA/SMC-ReservationService/internal/usecase/assign_table"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgSeatingNotFound    = "столик не найден"
	msgSeatingOtherOwner  = "столик принадлежит другому ресторану"
	msgSeatingInactive    = "столик недоступен для бронирования"
	msgNotAssignable      = "бронированию уже нельзя менять столик"
	msgCapacityExceeded   = "размер группы превышает вместимость столика"
	msgTimeConflict       = "столик уже занят на время бронирования"
)

// AssignTableRequest HTTP request model
type AssignTableRequest struct {
	SeatingID int64 `json:"seatingId"`
}

// AssignTableResponse HTTP response model
type AssignTableResponse struct {
	BookingID int64  `json:"bookingId"`
	SeatingID int64  `json:"seatingId"`
	Label     string `json:"label"`
}

type Handler struct {
	useCase AssignTableUseCase
	logger  Logger
}

func NewHandler(useCase AssignTableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/table
// Назначает или меняет столик у бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/table - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AssignTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/table - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignTable.Request{
		BookingID: bookingID,
		SeatingID: req.SeatingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignTable.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/table - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignTable.ErrSeatingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/table - Seating not found: seating_id=%d", req.SeatingID)
			handlers.RespondNotFound(w, msgSeatingNotFound)

		case errors.Is(err, assignTable.ErrSeatingNotInRestaurant):
			h.logger.Warn("PATCH /bookings/{id}/table - Seating from another restaurant: booking_id=%d, seating_id=%d",
				bookingID, req.SeatingID)
			handlers.RespondBadRequest(w, msgSeatingOtherOwner)

		case errors.Is(err, assignTable.ErrSeatingInactive):
			h.logger.Warn("PATCH /bookings/{id}/table - Seating inactive: seating_id=%d", req.SeatingID)
			handlers.RespondBadRequest(w, msgSeatingInactive)

		case errors.Is(err, assignTable.ErrNotAssignable):
			h.logger.Warn("PATCH /bookings/{id}/table - Booking not reassignable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotAssignable)

		case errors.Is(err, assignTable.ErrCapacityExceeded):
			h.logger.Warn("PATCH /bookings/{id}/table - Capacity exceeded: booking_id=%d, seating_id=%d",
				bookingID, req.SeatingID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, assignTable.ErrTimeConflict):
			h.logger.Warn("PATCH /bookings/{id}/table - Time conflict: booking_id=%d, seating_id=%d",
				bookingID, req.SeatingID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, assignTable.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/table - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/table - Failed to assign table: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/table - Table assigned successfully: booking_id=%d, seating_id=%d",
		result.BookingID, result.SeatingID)
	handlers.RespondJSON(w, http.StatusOK, &AssignTableResponse{
		BookingID: result.BookingID,
		SeatingID: result.SeatingID,
		Label:     result.Label,
	})
}
