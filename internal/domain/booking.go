package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingActive   BookingStatus = "ACTIVE"
	BookingCanceled BookingStatus = "CANCELED"
)

// Booking represents a court reservation for a one-hour slot
// Инвариант: для пары (court, date) интервалы [start, end) активных бронирований не пересекаются
type Booking struct {
	ID      int64
	UserID  int64
	CourtID int64
	Sport   Sport

	Date      time.Time // Календарная дата без времени
	StartTime types.TimeString
	EndTime   types.TimeString

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == BookingActive
}

// IsCanceled returns true if the booking has been cancelled
func (b *Booking) IsCanceled() bool {
	return b.Status == BookingCanceled
}

// Interval возвращает интервал бронирования для проверки пересечений
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// CanBeCancelledBy проверяет права на отмену: владелец или администратор
func (b *Booking) CanBeCancelledBy(u *User) bool {
	return b.UserID == u.ID || u.IsAdmin()
}
