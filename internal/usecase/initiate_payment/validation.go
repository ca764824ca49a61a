package initiate_payment

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
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

	if len(req.Slots) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	for _, slot := range req.Slots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot %q: %v", ErrInvalidInput, slot, err)
		}
	}

	return nil
}

// slotIntervals строит часовые интервалы от времен начала слотов
func slotIntervals(starts []types.TimeString) ([]domain.Interval, error) {
	intervals := make([]domain.Interval, 0, len(starts))
	for _, start := range starts {
		interval, err := domain.NewSlotInterval(start)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot %q: %v", ErrInvalidInput, start, err)
		}
		intervals = append(intervals, interval)
	}
	return intervals, nil
}
