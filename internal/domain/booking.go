package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// BookingStatus represents the status of a table booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusSeated    BookingStatus = "seated"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// allowedTransitions единственное место, где определена легальность переходов статусов
// pending → confirmed | cancelled (подтверждение или отклонение администратором)
// confirmed → seated | no_show | cancelled
// seated → completed | cancelled
// Терминальные статусы (completed, cancelled, no_show) переходов не имеют
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusSeated, StatusNoShow, StatusCancelled},
	StatusSeated:    {StatusCompleted, StatusCancelled},
}

// Booking represents a table reservation in the system
type Booking struct {
	ID               int64
	ConfirmationCode string // Уникальный код подтверждения (8 заглавных букв/цифр)
	RestaurantID     int64
	SeatingID        *int64 // ID столика; nil - бронирование без назначенного столика
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    *string
	PartySize        int
	BookingDate      time.Time
	StartTime        types.TimeString
	Status           BookingStatus
	Notes            *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks table availability (confirmed or seated)
// Статус pending намеренно НЕ блокирует доступность: брошенные заявки не должны
// запирать столики
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusSeated
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusNoShow
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return !b.IsTerminal()
}

// CanBeUpdated returns true if the customer can still edit date/time/party size
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo проверяет легальность перехода статуса по таблице переходов
func (b *Booking) CanTransitionTo(to BookingStatus) bool {
	for _, allowed := range allowedTransitions[b.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
// Единственная точка валидации статуса - все слои используют её
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusSeated, StatusCompleted, StatusCancelled, StatusNoShow:
		return status, nil
	default:
		return "", ErrUnknownStatus
	}
}

// RestaurantBookingsFilter фильтр для получения бронирований ресторана
type RestaurantBookingsFilter struct {
	RestaurantID    int64          // Обязательный параметр
	SeatingID       *int64         // Фильтр по столику (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	CustomerEmail   *string        // Фильтр по email клиента (опционально)
	IncludeTerminal bool           // Включать ли завершённые/отменённые бронирования
}
