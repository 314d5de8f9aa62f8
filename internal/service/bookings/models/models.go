package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetRestaurantBookingsRequest запрос на получение бронирований ресторана
type GetRestaurantBookingsRequest struct {
	RestaurantID    int64      `json:"restaurantId"`
	SeatingID       *int64     `json:"seatingId,omitempty"`       // Фильтр по столику (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	CustomerEmail   *string    `json:"customerEmail,omitempty"`   // Фильтр по email гостя (опционально)
	IncludeTerminal bool       `json:"includeTerminal,omitempty"` // Включить завершённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRestaurantBookingsRequest) ToDomainFilter() (domain.RestaurantBookingsFilter, error) {
	filter := domain.RestaurantBookingsFilter{
		RestaurantID:    r.RestaurantID,
		SeatingID:       r.SeatingID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		CustomerEmail:   r.CustomerEmail,
		IncludeTerminal: r.IncludeTerminal,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmationCode"`
	RestaurantID     int64  `json:"restaurantId"`
	SeatingID        *int64 `json:"seatingId,omitempty"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	PartySize   int    `json:"partySize"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "19:00"
	Status      string `json:"status"`
	Notes       *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		ConfirmationCode:   b.ConfirmationCode,
		RestaurantID:       b.RestaurantID,
		SeatingID:          b.SeatingID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		PartySize:          b.PartySize,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
