package get_available_tables

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByRestaurantAndDate(ctx context.Context, restaurantID int64, date time.Time) ([]*domain.Booking, error)
}

// SeatingRepository интерфейс репозитория столиков
type SeatingRepository interface {
	GetByRestaurant(ctx context.Context, restaurantID int64, activeOnly bool) ([]*domain.Seating, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки подбора столиков
type Config struct {
	// DiningDurationMinutes окно, на которое столик занят одним бронированием
	DiningDurationMinutes int
}
