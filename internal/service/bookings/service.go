package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ReservationService/pkg/confirmcode"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByConfirmationCode получает бронирование по коду подтверждения
// Код нормализуется к верхнему регистру перед поиском
func (s *Service) GetByConfirmationCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	normalized := confirmcode.Normalize(code)
	if !confirmcode.IsValid(normalized) {
		s.logger.Warn("GetByConfirmationCode: malformed code=%q", code)
		return nil, fmt.Errorf("%w: malformed confirmation code", ErrInvalidInput)
	}

	s.logger.Info("GetByConfirmationCode: fetching booking code=%s", normalized)

	booking, err := s.bookingRepo.GetByConfirmationCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByConfirmationCode: booking code=%s not found", normalized)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByConfirmationCode: repository error for code=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: GetByConfirmationCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetRestaurantBookings получает бронирования ресторана с гибкой фильтрацией
// Поддерживает фильтрацию по столику, периоду, статусу и email гостя
//
// Примеры использования:
// - Все живые бронирования: GetRestaurantBookings(ctx, &GetRestaurantBookingsRequest{RestaurantID: 1})
// - Бронирования конкретного столика: указать SeatingID
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Только подтвержденные: указать Status = "confirmed"
// - Включая завершённые и отменённые: IncludeTerminal = true
func (s *Service) GetRestaurantBookings(ctx context.Context, req *models.GetRestaurantBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetRestaurantBookings: fetching bookings for restaurant=%d", req.RestaurantID)
	if req.SeatingID != nil {
		logMsg += fmt.Sprintf(", seating=%d", *req.SeatingID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeTerminal {
		logMsg += ", includeTerminal=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRestaurantBookings: invalid filter for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRestaurantBookings: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRestaurantBookings: successfully fetched %d bookings for restaurant=%d", len(bookings), req.RestaurantID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус
// Допустимость перехода проверяется по таблице переходов жизненного цикла,
// при недопустимом переходе статус остаётся прежним
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем допустимость перехода
	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, newStatus)
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Cancel отменяет бронирование с указанием причины
// Отменить можно только бронирование в статусе pending, confirmed или seated
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Delete безвозвратно удаляет бронирование
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d", bookingID)

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}
