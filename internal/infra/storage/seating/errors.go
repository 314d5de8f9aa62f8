package seating

import "errors"

var (
	// ErrSeatingNotFound возвращается, когда столик не найден
	ErrSeatingNotFound = errors.New("seating.repository: seating not found")

	// ErrSeatingReferenced возвращается при попытке удалить столик,
	// на который ссылаются бронирования (FK RESTRICT)
	ErrSeatingReferenced = errors.New("seating.repository: seating is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("seating.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("seating.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("seating.repository: failed to scan row")
)
