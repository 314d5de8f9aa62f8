package create_booking

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_booking: restaurant not found")

	// ErrSeatingNotFound возвращается, когда запрошенный столик не найден
	ErrSeatingNotFound = errors.New("create_booking: seating not found")

	// ErrSeatingNotInRestaurant возвращается, когда столик принадлежит другому ресторану
	ErrSeatingNotInRestaurant = errors.New("create_booking: seating belongs to another restaurant")

	// ErrSeatingInactive возвращается, когда столик выключен и не принимает бронирования
	ErrSeatingInactive = errors.New("create_booking: seating is not active")

	// ErrCapacityExceeded возвращается, когда размер группы превышает вместимость столика
	ErrCapacityExceeded = errors.New("create_booking: party size exceeds seating capacity")

	// ErrTimeConflict возвращается, когда запрошенное время пересекается с
	// активным бронированием этого столика
	ErrTimeConflict = errors.New("create_booking: time slot conflicts with existing booking")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
