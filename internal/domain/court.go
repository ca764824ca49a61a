package domain

import "time"

// Sport вид спорта на квадре
type Sport string

const (
	SportBeachTennis Sport = "BEACH_TENNIS"
	SportVolei       Sport = "VOLEI"
	SportFutvolei    Sport = "FUTVOLEI"
)

// IsValid проверяет, что вид спорта известен системе
func (s Sport) IsValid() bool {
	switch s {
	case SportBeachTennis, SportVolei, SportFutvolei:
		return true
	default:
		return false
	}
}

// CourtType тип квадры (крытая/открытая)
type CourtType string

const (
	CourtCovered   CourtType = "COBERTA"
	CourtUncovered CourtType = "DESCOBERTA"
)

// Court represents a reservable sports court
// Reference data managed by administrators; never deleted while bookings reference it
type Court struct {
	ID           int64
	Name         string
	Sport        Sport
	Type         CourtType
	PricePerHour int64 // Цена за час в целых денежных единицах, не отрицательная

	CreatedAt time.Time
	UpdatedAt time.Time
}
