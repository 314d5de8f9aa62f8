package get_available_tables

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availableTables "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_tables"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TableItem элемент списка свободных столиков
type TableItem struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

// AvailableTablesResponse HTTP response model
type AvailableTablesResponse struct {
	Tables []TableItem `json:"tables"`
}

// ToUseCaseRequest собирает запрос usecase из path и query параметров
func ToUseCaseRequest(restaurantID int64, partySizeStr, dateStr, timeStr string) (*availableTables.Request, error) {
	partySize, err := strconv.Atoi(partySizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid partySize: %v", err)
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid time: %v", err)
	}

	return &availableTables.Request{
		RestaurantID: restaurantID,
		PartySize:    partySize,
		Date:         date,
		StartTime:    startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *availableTables.Response) *AvailableTablesResponse {
	tables := make([]TableItem, 0, len(resp.Tables))
	for _, t := range resp.Tables {
		tables = append(tables, TableItem{
			ID:       t.ID,
			Label:    t.Label,
			Capacity: t.Capacity,
			Type:     t.Type,
		})
	}

	return &AvailableTablesResponse{Tables: tables}
}
