package assign_table

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	seatingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/seating"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на назначение столика бронированию
type Request struct {
	BookingID int64 // ID бронирования
	SeatingID int64 // ID целевого столика
}

// Response модель ответа с обновлённым назначением
type Response struct {
	BookingID int64  // ID бронирования
	SeatingID int64  // ID назначенного столика
	Label     string // Номер/название столика
}

// UseCase use case для назначения или смены столика у бронирования
type UseCase struct {
	bookingRepo BookingRepository
	seatingRepo SeatingRepository
	txManager   TransactionManager
	cfg         Config
	logger      Logger
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
		bookingRepo: bookingRepo,
		seatingRepo: seatingRepo,
		txManager:   txManager,
		cfg:         cfg,
		logger:      logger,
	}
}

// Execute выполняет use case назначения столика
// Проверка занятости целевого столика и запись выполняются в сериализуемой
// транзакции, собственное бронирование из проверки пересечений исключается -
// перенос гостя на тот же столик не конфликтует сам с собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignTable: booking=%d, seating=%d", req.BookingID, req.SeatingID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.SeatingID <= 0 {
		return nil, fmt.Errorf("%w: seatingID must be positive", ErrInvalidInput)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("AssignTable: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("AssignTable: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Столик можно менять у любого незавершённого бронирования -
		// администратор пересаживает в том числе гостей, которые уже за столом
		if booking.IsTerminal() {
			uc.logger.Warn("AssignTable: booking id=%d is not reassignable, status=%s",
				booking.ID, booking.Status)
			return ErrNotAssignable
		}

		// 3. Проверяем целевой столик
		seating, err := uc.seatingRepo.GetByID(txCtx, req.SeatingID)
		if err != nil {
			if errors.Is(err, seatingRepo.ErrSeatingNotFound) {
				uc.logger.Warn("AssignTable: seating id=%d not found", req.SeatingID)
				return ErrSeatingNotFound
			}
			uc.logger.Error("AssignTable: failed to get seating id=%d: %v", req.SeatingID, err)
			return fmt.Errorf("%w: failed to get seating: %v", ErrInternal, err)
		}

		if seating.RestaurantID != booking.RestaurantID {
			uc.logger.Warn("AssignTable: seating id=%d belongs to restaurant=%d, booking to restaurant=%d",
				seating.ID, seating.RestaurantID, booking.RestaurantID)
			return ErrSeatingNotInRestaurant
		}

		if !seating.IsActive {
			uc.logger.Warn("AssignTable: seating id=%d is not active", seating.ID)
			return ErrSeatingInactive
		}

		if !seating.CanSeat(booking.PartySize) {
			uc.logger.Warn("AssignTable: party of %d exceeds seating id=%d capacity %d",
				booking.PartySize, seating.ID, seating.Capacity)
			return fmt.Errorf("%w: party of %d, capacity %d", ErrCapacityExceeded, booking.PartySize, seating.Capacity)
		}

		// 4. Проверяем занятость целевого столика с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveBySeatingAndDate(txCtx, req.SeatingID, booking.BookingDate, &booking.ID)
		if err != nil {
			uc.logger.Error("AssignTable: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		overlaps, err := hasOverlappingBooking(booking.StartTime, uc.cfg.DiningDurationMinutes, bookings)
		if err != nil {
			uc.logger.Error("AssignTable: failed to check overlap: %v", err)
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("AssignTable: seating id=%d is busy on %s at %s",
				seating.ID, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
			return ErrTimeConflict
		}

		// 5. Записываем назначение
		if err := uc.bookingRepo.UpdateSeating(txCtx, booking.ID, seating.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("AssignTable: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID: booking.ID,
			SeatingID: seating.ID,
			Label:     seating.Label,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignTable: successfully assigned seating id=%d to booking id=%d",
		result.SeatingID, result.BookingID)
	return result, nil
}

// hasOverlappingBooking проверяет пересечение окна бронирования с активными
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
