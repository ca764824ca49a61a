package domain

// Slot constants
const (
	// SlotDurationMinutes фиксированная длительность слота бронирования
	// Система не поддерживает слоты переменной длины
	SlotDurationMinutes = 60
)

// Listing constants
const (
	// AdminRecentBookingsLimit количество последних бронирований в админ-выдаче
	AdminRecentBookingsLimit = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
