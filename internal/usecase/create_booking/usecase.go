package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	restaurantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	seatingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/seating"
	"github.com/m04kA/SMC-ReservationService/pkg/confirmcode"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	seatingRepo    SeatingRepository
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	cfg            Config
	generateCode   CodeGenerator
	timeProvider   TimeProvider
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
		generateCode:   confirmcode.Generate,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости столика и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк - два конкурирующих запроса на одно время
// не могут оба пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: restaurant=%d, seating=%v, party=%d, date=%s, time=%s",
		req.RestaurantID, req.SeatingID, req.PartySize, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование ресторана
	if _, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateBooking: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 4. Если столик указан - проверяем его до входа в транзакцию
	if req.SeatingID != nil {
		if err := uc.checkSeating(ctx, req); err != nil {
			return nil, err
		}
	}

	// Начальный статус определяется конфигурацией
	status := domain.StatusPending
	if uc.cfg.AutoConfirmOnCreate {
		status = domain.StatusConfirmed
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Проверка занятости и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные бронирования столика на эту дату с блокировкой (FOR UPDATE)
		if req.SeatingID != nil {
			bookings, err := uc.bookingRepo.GetActiveBySeatingAndDate(txCtx, *req.SeatingID, req.Date, nil)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			// 5.2. Проверяем пересечение окон
			overlaps, err := hasOverlappingBooking(req.StartTime, uc.cfg.DiningDurationMinutes, bookings)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to check overlap: %v", err)
				return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
			}
			if overlaps {
				uc.logger.Warn("CreateBooking: seating id=%d is busy on %s at %s",
					*req.SeatingID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrTimeConflict
			}
		}

		booking := &domain.Booking{
			RestaurantID:  req.RestaurantID,
			SeatingID:     req.SeatingID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			PartySize:     req.PartySize,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			Status:        status,
			Notes:         req.Notes,
		}

		// 5.3. Сохраняем с уникальным кодом подтверждения
		// Коллизия кода крайне маловероятна (36^8 вариантов), но уникальный
		// индекс в БД может её отклонить - генерируем новый код и повторяем
		created, err := uc.createWithUniqueCode(txCtx, booking)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, code=%s, status=%s",
		result.ID, result.ConfirmationCode, result.Status)

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

// checkSeating проверяет, что столик существует, принадлежит ресторану,
// включён и вмещает группу
// Проверка вместимости идёт до любых записей в БД
func (uc *UseCase) checkSeating(ctx context.Context, req *Request) error {
	seating, err := uc.seatingRepo.GetByID(ctx, *req.SeatingID)
	if err != nil {
		if errors.Is(err, seatingRepo.ErrSeatingNotFound) {
			uc.logger.Warn("CreateBooking: seating id=%d not found", *req.SeatingID)
			return ErrSeatingNotFound
		}
		uc.logger.Error("CreateBooking: failed to get seating id=%d: %v", *req.SeatingID, err)
		return fmt.Errorf("%w: failed to get seating: %v", ErrInternal, err)
	}

	if seating.RestaurantID != req.RestaurantID {
		uc.logger.Warn("CreateBooking: seating id=%d belongs to restaurant=%d, not %d",
			seating.ID, seating.RestaurantID, req.RestaurantID)
		return ErrSeatingNotInRestaurant
	}

	if !seating.IsActive {
		uc.logger.Warn("CreateBooking: seating id=%d is not active", seating.ID)
		return ErrSeatingInactive
	}

	if !seating.CanSeat(req.PartySize) {
		uc.logger.Warn("CreateBooking: party of %d exceeds seating id=%d capacity %d",
			req.PartySize, seating.ID, seating.Capacity)
		return fmt.Errorf("%w: party of %d, capacity %d", ErrCapacityExceeded, req.PartySize, seating.Capacity)
	}

	return nil
}

// createWithUniqueCode сохраняет бронирование, повторяя генерацию кода при коллизии
func (uc *UseCase) createWithUniqueCode(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	attempts := uc.cfg.CodeGenerationAttempts
	if attempts <= 0 {
		attempts = domain.DefaultCodeGenerationAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		code, err := uc.generateCode()
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate confirmation code: %v", err)
			return nil, fmt.Errorf("%w: failed to generate confirmation code: %v", ErrInternal, err)
		}
		booking.ConfirmationCode = code

		created, err := uc.bookingRepo.Create(ctx, booking)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, bookingRepo.ErrDuplicateCode) {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		uc.logger.Warn("CreateBooking: confirmation code collision on attempt %d/%d", attempt, attempts)
	}

	uc.logger.Error("CreateBooking: exhausted %d attempts to generate unique code", attempts)
	return nil, fmt.Errorf("%w: failed to generate unique confirmation code", ErrInternal)
}
