package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func interval(t *testing.T, start, end string) Interval {
	t.Helper()

	s, err := types.NewTimeStringFromString(start)
	require.NoError(t, err)
	e, err := types.NewTimeStringFromString(end)
	require.NoError(t, err)

	return Interval{Start: s, End: e}
}

func activeBooking(t *testing.T, start, end string) *Booking {
	t.Helper()

	i := interval(t, start, end)
	return &Booking{StartTime: i.Start, EndTime: i.End, Status: BookingActive}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		overlaps bool
	}{
		{
			name:     "соседние интервалы не пересекаются",
			a:        interval(t, "09:00", "10:00"),
			b:        interval(t, "10:00", "11:00"),
			overlaps: false,
		},
		{
			name:     "частичное пересечение",
			a:        interval(t, "09:00", "10:00"),
			b:        interval(t, "09:30", "10:30"),
			overlaps: true,
		},
		{
			name:     "полное совпадение",
			a:        interval(t, "09:00", "10:00"),
			b:        interval(t, "09:00", "10:00"),
			overlaps: true,
		},
		{
			name:     "вложенный интервал",
			a:        interval(t, "09:00", "12:00"),
			b:        interval(t, "10:00", "11:00"),
			overlaps: true,
		},
		{
			name:     "непересекающиеся интервалы",
			a:        interval(t, "09:00", "10:00"),
			b:        interval(t, "14:00", "15:00"),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewSlotInterval(t *testing.T) {
	start, err := types.NewTimeStringFromString("14:00")
	require.NoError(t, err)

	slot, err := NewSlotInterval(start)
	require.NoError(t, err)
	assert.Equal(t, "14:00", slot.Start.String())
	assert.Equal(t, "15:00", slot.End.String())

	// Последний слот суток заканчивается в 24:00
	late, err := types.NewTimeStringFromString("23:00")
	require.NoError(t, err)

	slot, err = NewSlotInterval(late)
	require.NoError(t, err)
	assert.Equal(t, "24:00", slot.End.String())
}

func TestFindConflicts_AgainstExisting(t *testing.T) {
	existing := []*Booking{
		activeBooking(t, "10:00", "11:00"),
		activeBooking(t, "15:00", "16:00"),
	}

	candidates := []Interval{
		interval(t, "09:00", "10:00"), // граничит, не конфликт
		interval(t, "10:30", "11:30"), // пересекается
		interval(t, "12:00", "13:00"), // свободно
	}

	conflicts := FindConflicts(candidates, existing)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "10:30", conflicts[0].Start.String())
}

func TestFindConflicts_CanceledBookingsIgnored(t *testing.T) {
	canceled := activeBooking(t, "10:00", "11:00")
	canceled.Status = BookingCanceled

	conflicts := FindConflicts([]Interval{interval(t, "10:00", "11:00")}, []*Booking{canceled})
	assert.Empty(t, conflicts)
}

func TestFindConflicts_WithinRequest(t *testing.T) {
	// Дубликат и пересечение внутри одного запроса конфликтуют друг с другом
	candidates := []Interval{
		interval(t, "10:00", "11:00"),
		interval(t, "10:00", "11:00"),
	}

	conflicts := FindConflicts(candidates, nil)
	assert.Len(t, conflicts, 2)

	candidates = []Interval{
		interval(t, "10:00", "11:00"),
		interval(t, "11:00", "12:00"), // граничит, не конфликт
	}

	conflicts = FindConflicts(candidates, nil)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_Empty(t *testing.T) {
	assert.Empty(t, FindConflicts(nil, nil))
	assert.Empty(t, FindConflicts([]Interval{interval(t, "10:00", "11:00")}, nil))
}
