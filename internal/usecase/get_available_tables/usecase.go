package get_available_tables

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на подбор свободных столиков
type Request struct {
	RestaurantID int64            // ID ресторана
	PartySize    int              // Количество гостей
	Date         time.Time        // Дата визита
	StartTime    types.TimeString // Желаемое время прихода
}

// Table свободный столик в ответе
type Table struct {
	ID       int64  // ID столика
	Label    string // Номер/название столика
	Capacity int    // Вместимость
	Type     string // Тип столика (indoor/outdoor/vip)
}

// Response модель ответа со списком подходящих столиков
type Response struct {
	Tables []Table // Столики, вмещающие группу и свободные в запрошенное окно
}

// UseCase use case для подбора свободных столиков
type UseCase struct {
	bookingRepo    BookingRepository
	seatingRepo    SeatingRepository
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	cfg            Config
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	seatingRepo SeatingRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		seatingRepo:    seatingRepo,
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		cfg:            cfg,
		logger:         logger,
	}
}

// Execute выполняет use case подбора столиков
// Столик подходит, если он включён, вмещает группу и его активные бронирования
// не пересекаются с запрошенным окном. Выборка идёт в read-only транзакции,
// чтобы столики и бронирования читались из одного снимка данных
//
// Ответ подбора - подсказка: между подбором и созданием бронирования столик
// может занять другой гость, окончательную проверку делает создание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTables: restaurant=%d, party=%d, date=%s, time=%s",
		req.RestaurantID, req.PartySize, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование ресторана
	if _, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetAvailableTables: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetAvailableTables: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	var seatings []*domain.Seating
	var bookings []*domain.Booking

	// 3. Читаем столики и бронирования из одного снимка
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		seatings, err = uc.seatingRepo.GetByRestaurant(txCtx, req.RestaurantID, true)
		if err != nil {
			uc.logger.Error("GetAvailableTables: failed to get seatings: %v", err)
			return fmt.Errorf("%w: failed to get seatings: %v", ErrInternal, err)
		}

		bookings, err = uc.bookingRepo.GetActiveByRestaurantAndDate(txCtx, req.RestaurantID, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailableTables: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Группируем бронирования по столикам
	bookingsBySeating := make(map[int64][]*domain.Booking, len(seatings))
	for _, b := range bookings {
		if b.SeatingID == nil {
			continue
		}
		bookingsBySeating[*b.SeatingID] = append(bookingsBySeating[*b.SeatingID], b)
	}

	// 5. Отбираем столики по вместимости и занятости
	tables := make([]Table, 0, len(seatings))
	for _, seating := range seatings {
		if !seating.CanSeat(req.PartySize) {
			continue
		}

		overlaps, err := hasOverlappingBooking(req.StartTime, uc.cfg.DiningDurationMinutes, bookingsBySeating[seating.ID])
		if err != nil {
			uc.logger.Error("GetAvailableTables: failed to check overlap for seating id=%d: %v", seating.ID, err)
			return nil, fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if overlaps {
			continue
		}

		tables = append(tables, Table{
			ID:       seating.ID,
			Label:    seating.Label,
			Capacity: seating.Capacity,
			Type:     string(seating.Type),
		})
	}

	uc.logger.Info("GetAvailableTables: %d of %d tables available for restaurant=%d",
		len(tables), len(seatings), req.RestaurantID)

	return &Response{Tables: tables}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
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
