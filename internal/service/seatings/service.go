package seatings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	seatingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/seating"
	"github.com/m04kA/SMC-ReservationService/internal/service/seatings/models"
)

// Service сервис для управления столиками ресторана
type Service struct {
	seatingRepo    SeatingRepository
	restaurantRepo RestaurantRepository
	bookingRepo    BookingRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса столиков
func NewService(
	seatingRepo SeatingRepository,
	restaurantRepo RestaurantRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		seatingRepo:    seatingRepo,
		restaurantRepo: restaurantRepo,
		bookingRepo:    bookingRepo,
		logger:         logger,
	}
}

// Create создает новый столик в ресторане
func (s *Service) Create(ctx context.Context, restaurantID int64, req *models.CreateSeatingRequest) (*models.SeatingResponse, error) {
	s.logger.Info("Create: creating seating label=%s for restaurant=%d", req.Label, restaurantID)

	// Проверяем существование ресторана
	if err := s.checkRestaurantExists(ctx, restaurantID); err != nil {
		return nil, err
	}

	// Валидируем входные данные
	seatingType, err := s.validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("Create: invalid request for restaurant=%d: %v", restaurantID, err)
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	seating := &domain.Seating{
		RestaurantID: restaurantID,
		Label:        strings.TrimSpace(req.Label),
		Capacity:     req.Capacity,
		Type:         seatingType,
		IsActive:     isActive,
	}

	created, err := s.seatingRepo.Create(ctx, seating)
	if err != nil {
		s.logger.Error("Create: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created seating id=%d for restaurant=%d", created.ID, restaurantID)
	return models.FromDomainSeating(created), nil
}

// GetByID получает столик по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SeatingResponse, error) {
	s.logger.Info("GetByID: fetching seating id=%d", id)

	seating, err := s.seatingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, seatingRepo.ErrSeatingNotFound) {
			s.logger.Warn("GetByID: seating id=%d not found", id)
			return nil, ErrSeatingNotFound
		}
		s.logger.Error("GetByID: repository error for seating id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSeating(seating), nil
}

// List получает столики ресторана
// activeOnly - вернуть только включённые столики
func (s *Service) List(ctx context.Context, restaurantID int64, activeOnly bool) (*models.SeatingListResponse, error) {
	s.logger.Info("List: fetching seatings for restaurant=%d, activeOnly=%v", restaurantID, activeOnly)

	// Проверяем существование ресторана
	if err := s.checkRestaurantExists(ctx, restaurantID); err != nil {
		return nil, err
	}

	seatings, err := s.seatingRepo.GetByRestaurant(ctx, restaurantID, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d seatings for restaurant=%d", len(seatings), restaurantID)
	return models.FromDomainSeatingList(seatings), nil
}

// Update изменяет параметры столика
// Обновляются только поля, указанные в запросе
func (s *Service) Update(ctx context.Context, seatingID int64, req *models.UpdateSeatingRequest) (*models.SeatingResponse, error) {
	s.logger.Info("Update: updating seating id=%d", seatingID)

	seating, err := s.seatingRepo.GetByID(ctx, seatingID)
	if err != nil {
		if errors.Is(err, seatingRepo.ErrSeatingNotFound) {
			s.logger.Warn("Update: seating id=%d not found", seatingID)
			return nil, ErrSeatingNotFound
		}
		s.logger.Error("Update: repository error for seating id=%d: %v", seatingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Применяем изменения поверх текущего состояния
	if err := s.applyUpdate(seating, req); err != nil {
		s.logger.Warn("Update: invalid request for seating id=%d: %v", seatingID, err)
		return nil, err
	}

	if err := s.seatingRepo.Update(ctx, seating); err != nil {
		if errors.Is(err, seatingRepo.ErrSeatingNotFound) {
			s.logger.Warn("Update: seating id=%d not found during update", seatingID)
			return nil, ErrSeatingNotFound
		}
		s.logger.Error("Update: repository error for seating id=%d: %v", seatingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated seating id=%d", seatingID)
	return models.FromDomainSeating(seating), nil
}

// Delete удаляет столик
// Удаление запрещено, пока на столик ссылаются незавершённые бронирования -
// история завершённых бронирований сохраняет ссылку на столик, поэтому
// такие бронирования удалению не мешают
func (s *Service) Delete(ctx context.Context, seatingID int64) error {
	s.logger.Info("Delete: deleting seating id=%d", seatingID)

	// Столик должен существовать
	if _, err := s.seatingRepo.GetByID(ctx, seatingID); err != nil {
		if errors.Is(err, seatingRepo.ErrSeatingNotFound) {
			s.logger.Warn("Delete: seating id=%d not found", seatingID)
			return ErrSeatingNotFound
		}
		s.logger.Error("Delete: repository error for seating id=%d: %v", seatingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Проверяем незавершённые бронирования
	count, err := s.bookingRepo.CountNonTerminalBySeating(ctx, seatingID)
	if err != nil {
		s.logger.Error("Delete: failed to count bookings for seating id=%d: %v", seatingID, err)
		return fmt.Errorf("%w: Delete - failed to count bookings: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: seating id=%d has %d non-terminal bookings", seatingID, count)
		return fmt.Errorf("%w: %d active bookings", ErrSeatingInUse, count)
	}

	if err := s.seatingRepo.Delete(ctx, seatingID); err != nil {
		switch {
		case errors.Is(err, seatingRepo.ErrSeatingNotFound):
			s.logger.Warn("Delete: seating id=%d not found during delete", seatingID)
			return ErrSeatingNotFound
		case errors.Is(err, seatingRepo.ErrSeatingReferenced):
			// Гонка: бронирование появилось между проверкой и удалением,
			// FK в схеме отклонил удаление
			s.logger.Warn("Delete: seating id=%d referenced by bookings", seatingID)
			return fmt.Errorf("%w: referenced by bookings", ErrSeatingInUse)
		default:
			s.logger.Error("Delete: repository error for seating id=%d: %v", seatingID, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted seating id=%d", seatingID)
	return nil
}

// Вспомогательные методы

// checkRestaurantExists проверяет существование ресторана
func (s *Service) checkRestaurantExists(ctx context.Context, restaurantID int64) error {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("checkRestaurantExists: restaurant id=%d not found", restaurantID)
			return ErrRestaurantNotFound
		}
		s.logger.Error("checkRestaurantExists: repository error for restaurant id=%d: %v", restaurantID, err)
		return fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}
	return nil
}

// validateCreateRequest валидирует запрос на создание столика
func (s *Service) validateCreateRequest(req *models.CreateSeatingRequest) (domain.SeatingType, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return "", fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	if len(label) > domain.MaxLabelLength {
		return "", fmt.Errorf("%w: label exceeds %d characters", ErrInvalidInput, domain.MaxLabelLength)
	}
	if req.Capacity < domain.MinCapacity || req.Capacity > domain.MaxCapacity {
		return "", fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	seatingType, err := domain.ParseSeatingType(req.Type)
	if err != nil {
		return "", fmt.Errorf("%w: unknown seating type %q", ErrInvalidInput, req.Type)
	}

	return seatingType, nil
}

// applyUpdate применяет частичное обновление к столику
func (s *Service) applyUpdate(seating *domain.Seating, req *models.UpdateSeatingRequest) error {
	if req.Label != nil {
		label := strings.TrimSpace(*req.Label)
		if label == "" {
			return fmt.Errorf("%w: label cannot be empty", ErrInvalidInput)
		}
		if len(label) > domain.MaxLabelLength {
			return fmt.Errorf("%w: label exceeds %d characters", ErrInvalidInput, domain.MaxLabelLength)
		}
		seating.Label = label
	}

	if req.Capacity != nil {
		if *req.Capacity < domain.MinCapacity || *req.Capacity > domain.MaxCapacity {
			return fmt.Errorf("%w: capacity must be between %d and %d",
				ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
		}
		seating.Capacity = *req.Capacity
	}

	if req.Type != nil {
		seatingType, err := domain.ParseSeatingType(*req.Type)
		if err != nil {
			return fmt.Errorf("%w: unknown seating type %q", ErrInvalidInput, *req.Type)
		}
		seating.Type = seatingType
	}

	if req.IsActive != nil {
		seating.IsActive = *req.IsActive
	}

	return nil
}
