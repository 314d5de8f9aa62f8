package get_tables

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/seatings/models"
)

type SeatingService interface {
	List(ctx context.Context, restaurantID int64, activeOnly bool) (*models.SeatingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
