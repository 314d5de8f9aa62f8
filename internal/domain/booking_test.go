package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to seated", StatusPending, StatusSeated, false},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to seated", StatusConfirmed, StatusSeated, true},
		{"confirmed to no_show", StatusConfirmed, StatusNoShow, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, false},
		{"seated to completed", StatusSeated, StatusCompleted, true},
		{"seated to cancelled", StatusSeated, StatusCancelled, true},
		{"seated to no_show", StatusSeated, StatusNoShow, false},
		{"completed is terminal", StatusCompleted, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"no_show is terminal", StatusNoShow, StatusConfirmed, false},
		{"no self transition", StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	// Доступность блокируют только confirmed и seated
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusSeated}).IsActive())

	// pending не блокирует - осознанная политика против запирания столиков
	assert.False(t, (&Booking{Status: StatusPending}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusNoShow}).IsActive())
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusNoShow}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusSeated}).IsTerminal())
}

func TestBooking_CanBeUpdated(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeUpdated())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeUpdated())
	assert.False(t, (&Booking{Status: StatusSeated}).CanBeUpdated())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeUpdated())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	status, err = ParseBookingStatus("no_show")
	require.NoError(t, err)
	assert.Equal(t, StatusNoShow, status)

	_, err = ParseBookingStatus("in_progress")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseBookingStatus("")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
