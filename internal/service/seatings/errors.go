package seatings

import "errors"

var (
	// ErrSeatingNotFound возвращается, когда столик не найден
	ErrSeatingNotFound = errors.New("seating not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrSeatingInUse возвращается при попытке удалить столик,
	// на который ссылаются незавершённые бронирования
	ErrSeatingInUse = errors.New("seating has non-terminal bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
