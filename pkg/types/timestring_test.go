package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 14, 5, 0, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)

	end, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "10:30", end.String())

	// Конец дня представим как 24:00
	late, err := NewTimeStringFromString("23:00")
	require.NoError(t, err)

	end, err = late.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "24:00", end.String())

	// Переход через полночь недопустим
	_, err = late.AddMinutes(90)
	assert.Error(t, err)
}

func TestTimeString_DayEnd(t *testing.T) {
	// "24:00" - легальный конец последнего слота дня
	end, err := NewTimeStringFromString("24:00")
	require.NoError(t, err)
	require.NoError(t, end.Validate())

	minutes, err := end.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 24*60, minutes)

	value, err := end.Value()
	require.NoError(t, err)
	assert.Equal(t, "24:00", value)

	start, _ := NewTimeStringFromString("23:00")
	assert.True(t, start.IsBefore(end))

	// Но не начало: за 24:00 день закончился
	_, err = end.AddMinutes(60)
	assert.Error(t, err)

	// Часы за пределами суток по-прежнему отклоняются
	_, err = NewTimeStringFromString("24:30")
	assert.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	a, _ := NewTimeStringFromString("09:00")
	b, _ := NewTimeStringFromString("10:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// TIME колонка приходит как "10:00:00"
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("14:30:00")))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, "08:15", ts.String())

	// Postgres хранит конец суток как 24:00:00
	require.NoError(t, ts.Scan("24:00:00"))
	assert.Equal(t, "24:00", ts.String())
}
