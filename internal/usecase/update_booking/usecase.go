package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	seatingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/seating"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	seatingRepo  SeatingRepository
	txManager    TransactionManager
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	seatingRepo SeatingRepository,
	txManager TransactionManager,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		seatingRepo:  seatingRepo,
		txManager:    txManager,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case изменения бронирования
// Перенос даты/времени и смена размера группы заново проходят проверки
// вместимости и занятости столика в сериализуемой транзакции, при этом
// собственное окно бронирования из проверки исключается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 2. Чтение, проверки и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.1. Изменять можно только pending и confirmed
		if !booking.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d is not updatable, status=%s",
				booking.ID, booking.Status)
			return ErrNotUpdatable
		}

		// 2.2. Применяем изменения поверх текущего состояния
		applyRequest(booking, req)

		// 2.3. Новая дата не в прошлом
		if err := validateDate(booking.BookingDate, now); err != nil {
			uc.logger.Warn("UpdateBooking: date validation failed: %v", err)
			return err
		}

		// 2.4. Если столик назначен - заново проверяем вместимость и занятость
		if booking.SeatingID != nil {
			if err := uc.checkSeating(txCtx, booking); err != nil {
				return err
			}
		}

		// 2.5. Сохраняем изменения
		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	return &Response{
		ID:               result.ID,
		ConfirmationCode: result.ConfirmationCode,
		RestaurantID:     result.RestaurantID,
		SeatingID:        result.SeatingID,
		CustomerName:     result.CustomerName,
		CustomerEmail:    result.CustomerEmail,
		CustomerPhone:    result.CustomerPhone,
		PartySize:        result.PartySize,
		BookingDate:      result.BookingDate,
		StartTime:        result.StartTime,
		Status:           string(result.Status),
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// checkSeating проверяет вместимость столика и занятость нового окна
// Собственное бронирование исключается из проверки пересечений - перенос
// на время, пересекающееся со старым окном, не должен конфликтовать сам с собой
func (uc *UseCase) checkSeating(ctx context.Context, booking *domain.Booking) error {
	seating, err := uc.seatingRepo.GetByID(ctx, *booking.SeatingID)
	if err != nil {
		if errors.Is(err, seatingRepo.ErrSeatingNotFound) {
			uc.logger.Error("UpdateBooking: seating id=%d referenced by booking id=%d not found",
				*booking.SeatingID, booking.ID)
			return fmt.Errorf("%w: seating not found", ErrInternal)
		}
		uc.logger.Error("UpdateBooking: failed to get seating id=%d: %v", *booking.SeatingID, err)
		return fmt.Errorf("%w: failed to get seating: %v", ErrInternal, err)
	}

	if !seating.CanSeat(booking.PartySize) {
		uc.logger.Warn("UpdateBooking: party of %d exceeds seating id=%d capacity %d",
			booking.PartySize, seating.ID, seating.Capacity)
		return fmt.Errorf("%w: party of %d, capacity %d", ErrCapacityExceeded, booking.PartySize, seating.Capacity)
	}

	bookings, err := uc.bookingRepo.GetActiveBySeatingAndDate(ctx, *booking.SeatingID, booking.BookingDate, &booking.ID)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	overlaps, err := hasOverlappingBooking(booking.StartTime, uc.cfg.DiningDurationMinutes, bookings)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to check overlap: %v", err)
		return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
	}
	if overlaps {
		uc.logger.Warn("UpdateBooking: seating id=%d is busy on %s at %s",
			*booking.SeatingID, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
		return ErrTimeConflict
	}

	return nil
}

// applyRequest применяет частичное обновление к бронированию
func applyRequest(booking *domain.Booking, req *Request) {
	if req.Date != nil {
		booking.BookingDate = *req.Date
	}
	if req.StartTime != nil {
		booking.StartTime = *req.StartTime
	}
	if req.PartySize != nil {
		booking.PartySize = *req.PartySize
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Date == nil && req.StartTime == nil && req.PartySize == nil && req.Notes == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date cannot be zero", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.PartySize != nil && (*req.PartySize < domain.MinPartySize || *req.PartySize > domain.MaxPartySize) {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: booking date is in the past", ErrInvalidDate)
	}

	return nil
}

// hasOverlappingBooking проверяет пересечение запрошенного окна с активными
// бронированиями столика (полуоткрытые интервалы, строгие неравенства)
func hasOverlappingBooking(
	startTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) (bool, error) {
	candStart, err := startTime.Minutes()
	if err != nil {
		return false, fmt.Errorf("failed to parse start time: %w", err)
	}
	candEnd := candStart + durationMinutes

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStart, err := booking.StartTime.Minutes()
		if err != nil {
			continue
		}
		bookingEnd := bookingStart + durationMinutes

		if bookingStart < candEnd && bookingEnd > candStart {
			return true, nil
		}
	}

	return false, nil
}
