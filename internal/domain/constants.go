package domain

import "errors"

// Default configuration values
const (
	// DefaultDiningDurationMinutes время, на которое столик считается занятым одним
	// бронированием (окно конфликта)
	DefaultDiningDurationMinutes = 90

	// DefaultCodeGenerationAttempts число попыток генерации уникального кода подтверждения
	DefaultCodeGenerationAttempts = 5
)

// Business validation constants
const (
	MinPartySize = 1
	MaxPartySize = 100

	MinCapacity = 1
	MaxCapacity = 100

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 200
	MaxLabelLength              = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Domain-level sentinel errors
var (
	// ErrUnknownStatus возвращается при неизвестном статусе бронирования
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownSeatingType возвращается при неизвестном типе столика
	ErrUnknownSeatingType = errors.New("domain: unknown seating type")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	ErrIllegalTransition = errors.New("domain: illegal status transition")
)

// ActiveStatuses статусы, блокирующие доступность столика
// Используются в проверке пересечений при создании/переносе бронирований
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusSeated,
}

// NonTerminalStatuses статусы незавершённых бронирований
// Используются в защите от удаления столика с живыми бронированиями
var NonTerminalStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusSeated,
}

// TerminalStatuses завершённые статусы, по умолчанию исключаемые из списков
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
