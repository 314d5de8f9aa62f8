package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveBySeatingAndDate(ctx context.Context, seatingID int64, date time.Time, excludeBookingID *int64) ([]*domain.Booking, error)
}

// SeatingRepository интерфейс репозитория столиков
type SeatingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Seating, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CodeGenerator генерирует коды подтверждения (для тестирования)
type CodeGenerator func() (string, error)

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

// Config настройки создания бронирований
type Config struct {
	// DiningDurationMinutes окно, на которое столик занят одним бронированием
	DiningDurationMinutes int

	// AutoConfirmOnCreate true - новое бронирование сразу получает статус confirmed,
	// false - создаётся в статусе pending и ждёт подтверждения администратором
	AutoConfirmOnCreate bool

	// CodeGenerationAttempts число попыток генерации уникального кода подтверждения
	CodeGenerationAttempts int
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
