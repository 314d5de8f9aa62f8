package create_table

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/seatings/models"
)

type SeatingService interface {
	Create(ctx context.Context, restaurantID int64, req *models.CreateSeatingRequest) (*models.SeatingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
