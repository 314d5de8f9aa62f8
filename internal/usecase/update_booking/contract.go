package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetActiveBySeatingAndDate(ctx context.Context, seatingID int64, date time.Time, excludeBookingID *int64) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// SeatingRepository интерфейс репозитория столиков
type SeatingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Seating, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки изменения бронирований
type Config struct {
	// DiningDurationMinutes окно, на которое столик занят одним бронированием
	DiningDurationMinutes int
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
