package get_available_tables

import (
	"context"

	availableTables "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_tables"
)

type GetAvailableTablesUseCase interface {
	Execute(ctx context.Context, req *availableTables.Request) (*availableTables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
