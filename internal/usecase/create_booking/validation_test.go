package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{"valid", func(r *Request) {}, false},
		{"valid without seating", func(r *Request) { r.SeatingID = nil }, false},
		{"zero restaurant", func(r *Request) { r.RestaurantID = 0 }, true},
		{"negative seating", func(r *Request) { r.SeatingID = ptr.Ptr(int64(-1)) }, true},
		{"empty name", func(r *Request) { r.CustomerName = "  " }, true},
		{"empty email", func(r *Request) { r.CustomerEmail = "" }, true},
		{"malformed email", func(r *Request) { r.CustomerEmail = "not-an-email" }, true},
		{"email with display name", func(r *Request) { r.CustomerEmail = "Ivan <ivan@example.com>" }, true},
		{"zero party", func(r *Request) { r.PartySize = 0 }, true},
		{"negative party", func(r *Request) { r.PartySize = -3 }, true},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, true},
		{"empty start time", func(r *Request) { r.StartTime = "" }, true},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequest_NotesTooLong(t *testing.T) {
	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}

	req := validRequest()
	req.Notes = ptr.Ptr(string(long))

	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestHasOverlappingBooking(t *testing.T) {
	booked := func(start types.TimeString, status domain.BookingStatus) *domain.Booking {
		return existingBooking(7, start, status)
	}

	tests := []struct {
		name     string
		start    types.TimeString
		existing []*domain.Booking
		want     bool
	}{
		{"empty table", "19:00", nil, false},
		{"same start", "19:00", []*domain.Booking{booked("19:00", domain.StatusConfirmed)}, true},
		{"overlap from behind", "19:30", []*domain.Booking{booked("19:00", domain.StatusConfirmed)}, true},
		{"overlap from front", "18:00", []*domain.Booking{booked("19:00", domain.StatusConfirmed)}, true},
		{"exactly at window end", "20:30", []*domain.Booking{booked("19:00", domain.StatusConfirmed)}, false},
		{"window ends at existing start", "17:30", []*domain.Booking{booked("19:00", domain.StatusConfirmed)}, false},
		{"one minute short of window end", "20:29", []*domain.Booking{booked("19:00", domain.StatusConfirmed)}, true},
		{"pending ignored", "19:00", []*domain.Booking{booked("19:00", domain.StatusPending)}, false},
		{"cancelled ignored", "19:00", []*domain.Booking{booked("19:00", domain.StatusCancelled)}, false},
		{"seated blocks", "19:00", []*domain.Booking{booked("19:00", domain.StatusSeated)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hasOverlappingBooking(tt.start, domain.DefaultDiningDurationMinutes, tt.existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
