package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// CreateSeatingRequest запрос на создание столика
type CreateSeatingRequest struct {
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
	IsActive *bool  `json:"isActive,omitempty"` // По умолчанию столик включён
}

// UpdateSeatingRequest запрос на изменение столика
// Указываются только изменяемые поля
type UpdateSeatingRequest struct {
	Label    *string `json:"label,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Type     *string `json:"type,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// Response модели

// SeatingResponse ответ с данными столика
type SeatingResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	Label        string `json:"label"`
	Capacity     int    `json:"capacity"`
	Type         string `json:"type"`
	IsActive     bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SeatingListResponse ответ со списком столиков
type SeatingListResponse struct {
	Seatings []SeatingResponse `json:"tables"`
}

// Методы конвертации

// FromDomainSeating конвертирует domain модель в DTO
func FromDomainSeating(s *domain.Seating) *SeatingResponse {
	if s == nil {
		return nil
	}

	return &SeatingResponse{
		ID:           s.ID,
		RestaurantID: s.RestaurantID,
		Label:        s.Label,
		Capacity:     s.Capacity,
		Type:         string(s.Type),
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainSeatingList конвертирует список domain моделей в DTO
func FromDomainSeatingList(seatings []*domain.Seating) *SeatingListResponse {
	if seatings == nil {
		return &SeatingListResponse{
			Seatings: []SeatingResponse{},
		}
	}

	resp := &SeatingListResponse{
		Seatings: make([]SeatingResponse, len(seatings)),
	}

	for i, seating := range seatings {
		if seatingResp := FromDomainSeating(seating); seatingResp != nil {
			resp.Seatings[i] = *seatingResp
		}
	}

	return resp
}
