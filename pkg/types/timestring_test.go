package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("19:00")
	require.NoError(t, err)
	assert.Equal(t, "19:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("7pm")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("19:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 19*60+30, minutes)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("19:00")

	end, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:30"), end)

	// Выход за пределы суток - ошибка
	_, err = TimeString("23:30").AddMinutes(90)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("19:00").IsBefore("19:30"))
	assert.False(t, TimeString("19:30").IsBefore("19:30"))
	assert.True(t, TimeString("20:30").IsAfter("19:00"))
	assert.False(t, TimeString("19:00").IsAfter("19:00"))

	// Некорректные значения не сравниваются
	assert.False(t, TimeString("bad").IsBefore("19:00"))
	assert.False(t, TimeString("19:00").IsAfter("bad"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}
