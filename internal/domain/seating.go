package domain

import "time"

// SeatingType represents the type of a table
type SeatingType string

const (
	SeatingIndoor  SeatingType = "indoor"
	SeatingOutdoor SeatingType = "outdoor"
	SeatingVIP     SeatingType = "vip"
)

// Seating represents a single table in a restaurant
type Seating struct {
	ID           int64
	RestaurantID int64
	Label        string // Номер/название столика ("T1", "Terrace 3")
	Capacity     int    // Максимальное количество гостей
	Type         SeatingType
	IsActive     bool // Выключенные столики не участвуют в подборе

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanSeat returns true if the table fits the given party size
func (s *Seating) CanSeat(partySize int) bool {
	return partySize > 0 && partySize <= s.Capacity
}

// ParseSeatingType конвертирует строку в SeatingType с валидацией
// Любое значение вне enum - ошибка целостности данных, без молчаливого приведения
func ParseSeatingType(s string) (SeatingType, error) {
	t := SeatingType(s)
	switch t {
	case SeatingIndoor, SeatingOutdoor, SeatingVIP:
		return t, nil
	default:
		return "", ErrUnknownSeatingType
	}
}
