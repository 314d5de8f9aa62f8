package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.SeatingID != nil && *req.SeatingID <= 0 {
		return fmt.Errorf("%w: seatingID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if err := validateEmail(req.CustomerEmail); err != nil {
		return err
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время прихода указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateEmail проверяет синтаксис email адреса
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: malformed customerEmail", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: booking date is in the past", ErrInvalidDate)
	}

	return nil
}

// hasOverlappingBooking проверяет пересечение запрошенного окна с активными
// бронированиями столика
//
// Окна полуоткрытые [start, start+duration): бронирование, начинающееся ровно
// в момент окончания предыдущего, конфликтом не считается. Сравнение идёт
// в минутах от полуночи, чтобы окно, упирающееся в полночь, не ломало проверку
func hasOverlappingBooking(
	startTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) (bool, error) {
	candStart, err := startTime.Minutes()
	if err != nil {
		return false, fmt.Errorf("failed to parse start time: %w", err)
	}
	candEnd := candStart + durationMinutes

	for _, booking := range bookings {
		// Пропускаем бронирования, не блокирующие доступность
		if !booking.IsActive() {
			continue
		}

		bookingStart, err := booking.StartTime.Minutes()
		if err != nil {
			// Некорректное время в БД не должно валить проверку целиком
			continue
		}
		bookingEnd := bookingStart + durationMinutes

		// Строгие неравенства: смежные окна не пересекаются
		if bookingStart < candEnd && bookingEnd > candStart {
			return true, nil
		}
	}

	return false, nil
}
