package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatingType(t *testing.T) {
	for _, valid := range []string{"indoor", "outdoor", "vip"} {
		st, err := ParseSeatingType(valid)
		require.NoError(t, err)
		assert.Equal(t, SeatingType(valid), st)
	}

	// Значения вне enum отклоняются, а не приводятся
	_, err := ParseSeatingType("terrace")
	assert.ErrorIs(t, err, ErrUnknownSeatingType)

	_, err = ParseSeatingType("VIP")
	assert.ErrorIs(t, err, ErrUnknownSeatingType)

	_, err = ParseSeatingType("")
	assert.ErrorIs(t, err, ErrUnknownSeatingType)
}

func TestSeating_CanSeat(t *testing.T) {
	table := &Seating{Capacity: 4}

	assert.True(t, table.CanSeat(1))
	assert.True(t, table.CanSeat(4))
	assert.False(t, table.CanSeat(5))
	assert.False(t, table.CanSeat(0))
	assert.False(t, table.CanSeat(-1))
}
