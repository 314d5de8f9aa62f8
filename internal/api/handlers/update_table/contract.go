package update_table

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/seatings/models"
)

type SeatingService interface {
	Update(ctx context.Context, seatingID int64, req *models.UpdateSeatingRequest) (*models.SeatingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
