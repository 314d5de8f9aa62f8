package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrNotUpdatable возвращается, когда бронирование уже нельзя изменить
	// (гость за столиком или бронирование завершено)
	ErrNotUpdatable = errors.New("update_booking: booking can no longer be updated")

	// ErrCapacityExceeded возвращается, когда новый размер группы превышает
	// вместимость назначенного столика
	ErrCapacityExceeded = errors.New("update_booking: party size exceeds seating capacity")

	// ErrTimeConflict возвращается, когда новое время пересекается с другим
	// активным бронированием столика
	ErrTimeConflict = errors.New("update_booking: time slot conflicts with existing booking")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("update_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
