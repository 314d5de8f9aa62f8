package update_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	updateBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UpdateBookingRequest HTTP request model
// Указываются только изменяемые поля
type UpdateBookingRequest struct {
	BookingDate *string `json:"bookingDate,omitempty"` // "2025-10-15"
	StartTime   *string `json:"startTime,omitempty"`   // "19:00"
	PartySize   *int    `json:"partySize,omitempty"`
	Notes       *string `json:"notes,omitempty"`
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
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID: bookingID,
		PartySize: r.PartySize,
		Notes:     r.Notes,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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
