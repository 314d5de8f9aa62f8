package domain

import "time"

// Restaurant represents a restaurant that owns tables and bookings
// CRUD по ресторанам не входит в этот сервис - сущность нужна как родитель
// для столиков и бронирований
type Restaurant struct {
	ID          int64
	Name        string
	Description *string
	Address     *string
	Phone       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
