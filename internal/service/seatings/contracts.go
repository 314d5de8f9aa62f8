package seatings

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SeatingRepository интерфейс репозитория столиков
type SeatingRepository interface {
	Create(ctx context.Context, seating *domain.Seating) (*domain.Seating, error)
	GetByID(ctx context.Context, id int64) (*domain.Seating, error)
	GetByRestaurant(ctx context.Context, restaurantID int64, activeOnly bool) ([]*domain.Seating, error)
	Update(ctx context.Context, seating *domain.Seating) error
	Delete(ctx context.Context, id int64) error
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// BookingRepository интерфейс репозитория бронирований
// Нужен для защиты от удаления столика с живыми бронированиями
type BookingRepository interface {
	CountNonTerminalBySeating(ctx context.Context, seatingID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
