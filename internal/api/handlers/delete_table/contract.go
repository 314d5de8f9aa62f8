package delete_table

import "context"

type SeatingService interface {
	Delete(ctx context.Context, seatingID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
