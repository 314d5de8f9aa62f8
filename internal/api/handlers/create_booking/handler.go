package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgTimeConflict         = "столик уже занят на выбранное время"
	msgRestaurantNotFound   = "ресторан не найден"
	msgSeatingNotFound      = "столик не найден"
	msgSeatingOtherOwner    = "столик принадлежит другому ресторану"
	msgSeatingInactive      = "столик недоступен для бронирования"
	msgCapacityExceeded     = "размер группы превышает вместимость столика"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgInvalidRequestParams = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTimeConflict):
			h.logger.Warn("POST /bookings - Time conflict: restaurant_id=%d, seating_id=%v, date=%s, time=%s",
				req.RestaurantID, req.SeatingID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createBooking.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings - Restaurant not found: restaurant_id=%d", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createBooking.ErrSeatingNotFound):
			h.logger.Warn("POST /bookings - Seating not found: seating_id=%v", req.SeatingID)
			handlers.RespondNotFound(w, msgSeatingNotFound)

		case errors.Is(err, createBooking.ErrSeatingNotInRestaurant):
			h.logger.Warn("POST /bookings - Seating from another restaurant: restaurant_id=%d, seating_id=%v",
				req.RestaurantID, req.SeatingID)
			handlers.RespondBadRequest(w, msgSeatingOtherOwner)

		case errors.Is(err, createBooking.ErrSeatingInactive):
			h.logger.Warn("POST /bookings - Seating inactive: seating_id=%v", req.SeatingID)
			handlers.RespondBadRequest(w, msgSeatingInactive)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: seating_id=%v, party_size=%d",
				req.SeatingID, req.PartySize)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestParams)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: restaurant_id=%d, error=%v",
				req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, code=%s, restaurant_id=%d",
		result.ID, result.ConfirmationCode, result.RestaurantID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
