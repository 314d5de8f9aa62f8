package assign_table

import (
	"context"

	assignTable "github.com/m04kA/SMC-ReservationService/internal/usecase/assign_table"
)

type AssignTableUseCase interface {
	Execute(ctx context.Context, req *assignTable.Request) (*assignTable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
