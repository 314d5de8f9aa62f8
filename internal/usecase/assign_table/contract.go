package assign_table

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetActiveBySeatingAndDate(ctx context.Context, seatingID int64, date time.Time, excludeBookingID *int64) ([]*domain.Booking, error)
	UpdateSeating(ctx context.Context, id int64, seatingID int64) error
}

// SeatingRepository интерфейс репозитория столиков
type SeatingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Seating, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки назначения столиков
type Config struct {
	// DiningDurationMinutes окно, на которое столик занят одним бронированием
	DiningDurationMinutes int
}
