package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgNotFound           = "бронирование не найдено"
	msgNotUpdatable       = "бронирование уже нельзя изменить"
	msgTimeConflict       = "столик уже занят на выбранное время"
	msgCapacityExceeded   = "размер группы превышает вместимость столика"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgInvalidParams      = "некорректные параметры запроса"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrNotUpdatable):
			h.logger.Warn("PATCH /bookings/{id} - Booking not updatable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotUpdatable)

		case errors.Is(err, updateBooking.ErrTimeConflict):
			h.logger.Warn("PATCH /bookings/{id} - Time conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, updateBooking.ErrCapacityExceeded):
			h.logger.Warn("PATCH /bookings/{id} - Capacity exceeded: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, updateBooking.ErrInvalidDate):
			h.logger.Warn("PATCH /bookings/{id} - Invalid booking date: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
