package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: court id must be positive", ErrInvalidInput)
	}

	if !domain.Sport(req.Sport).IsValid() {
		return fmt.Errorf("%w: unknown sport %q", ErrInvalidInput, req.Sport)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: booking date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	// Пустой или вывернутый интервал не бронируем
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	return nil
}
