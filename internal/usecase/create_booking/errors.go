package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда квадра не найдена
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrSlotTaken возвращается, когда запрошенный интервал пересекается
	// с активным бронированием
	ErrSlotTaken = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
