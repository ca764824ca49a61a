package domain

import (
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Interval полуоткрытый временной интервал [Start, End) в пределах одного дня
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewSlotInterval строит интервал слота фиксированной длительности от времени начала
func NewSlotInterval(start types.TimeString) (Interval, error) {
	end, err := start.AddMinutes(SlotDurationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение двух полуоткрытых интервалов
// Интервалы пересекаются, только если:
// - начало одного СТРОГО раньше конца другого И
// - конец одного СТРОГО позже начала другого
//
// Граничные случаи пересечением не считаются:
// - Интервал 09:00-10:00 и интервал 10:00-11:00 -> НЕТ пересечения (граничат)
// - Интервал 09:00-10:00 и интервал 09:30-10:30 -> ЕСТЬ пересечение (09:30-10:00)
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}

// FindConflicts возвращает кандидатов, которые нельзя забронировать
//
// Кандидат конфликтует, если:
// - пересекается с любым АКТИВНЫМ бронированием из existing, ИЛИ
// - пересекается с другим кандидатом из того же запроса
//   (дубликаты и пересечения внутри запроса отклоняются явно,
//   иначе при гонке возможно частичное двойное бронирование)
//
// Кандидаты возвращаются в порядке исходного списка; existing с другим статусом игнорируются.
// Сопоставление по дате и квадре выполняет вызывающая сторона - сюда попадают
// только бронирования нужной пары (court, date).
func FindConflicts(candidates []Interval, existing []*Booking) []Interval {
	conflicts := make([]Interval, 0)

	for i, candidate := range candidates {
		conflicting := false

		for _, booking := range existing {
			if !booking.IsActive() {
				continue
			}
			if candidate.Overlaps(booking.Interval()) {
				conflicting = true
				break
			}
		}

		if !conflicting {
			for j, other := range candidates {
				if i == j {
					continue
				}
				if candidate.Overlaps(other) {
					conflicting = true
					break
				}
			}
		}

		if conflicting {
			conflicts = append(conflicts, candidate)
		}
	}

	return conflicts
}
