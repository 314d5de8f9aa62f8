package get_restaurant_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
func ToServiceRequest(
	restaurantID int64,
	seatingIDStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
	customerEmail string,
	includeTerminalStr string,
) (*models.GetRestaurantBookingsRequest, error) {
	req := &models.GetRestaurantBookingsRequest{
		RestaurantID: restaurantID,
	}

	if seatingIDStr != "" {
		seatingID, err := strconv.ParseInt(seatingIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seatingId: %w", err)
		}
		req.SeatingID = &seatingID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &endDate
	}

	if customerEmail != "" {
		req.CustomerEmail = &customerEmail
	}

	if includeTerminalStr != "" {
		includeTerminal, err := strconv.ParseBool(includeTerminalStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeTerminal: %w", err)
		}
		req.IncludeTerminal = includeTerminal
	}

	return req, nil
}
