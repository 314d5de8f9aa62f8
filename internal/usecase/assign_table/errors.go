package assign_table

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("assign_table: booking not found")

	// ErrSeatingNotFound возвращается, когда столик не найден
	ErrSeatingNotFound = errors.New("assign_table: seating not found")

	// ErrSeatingNotInRestaurant возвращается, когда столик принадлежит другому ресторану
	ErrSeatingNotInRestaurant = errors.New("assign_table: seating belongs to another restaurant")

	// ErrSeatingInactive возвращается, когда столик выключен
	ErrSeatingInactive = errors.New("assign_table: seating is not active")

	// ErrNotAssignable возвращается, когда бронированию уже нельзя менять столик
	ErrNotAssignable = errors.New("assign_table: booking can no longer be reassigned")

	// ErrCapacityExceeded возвращается, когда группа не помещается за столик
	ErrCapacityExceeded = errors.New("assign_table: party size exceeds seating capacity")

	// ErrTimeConflict возвращается, когда окно бронирования пересекается с
	// активным бронированием целевого столика
	ErrTimeConflict = errors.New("assign_table: time slot conflicts with existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_table: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_table: internal error")
)
