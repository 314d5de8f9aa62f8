package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID  int64   `json:"restaurantId"`
	SeatingID     *int64  `json:"seatingId,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	PartySize     int     `json:"partySize"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	StartTime     string  `json:"startTime"`   // "19:00"
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64   `json:"id"`
	ConfirmationCode string  `json:"confirmationCode"`
	RestaurantID     int64   `json:"restaurantId"`
	SeatingID        *int64  `json:"seatingId,omitempty"`
	CustomerName     string  `json:"customerName"`
	CustomerEmail    string  `json:"customerEmail"`
	CustomerPhone    *string `json:"customerPhone,omitempty"`
	PartySize        int     `json:"partySize"`
	BookingDate      string  `json:"bookingDate"`
	StartTime        string  `json:"startTime"`
	Status           string  `json:"status"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RestaurantID:  r.RestaurantID,
		SeatingID:     r.SeatingID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		PartySize:     r.PartySize,
		Date:          bookingDate,
		StartTime:     startTime,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		ConfirmationCode: resp.ConfirmationCode,
		RestaurantID:     resp.RestaurantID,
		SeatingID:        resp.SeatingID,
		CustomerName:     resp.CustomerName,
		CustomerEmail:    resp.CustomerEmail,
		CustomerPhone:    resp.CustomerPhone,
		PartySize:        resp.PartySize,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		Status:           resp.Status,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
