// Package slots строит часовые слоты бронирования для площадки, даты и приёма пищи.
// Функции пакета чистые: повторная генерация даёт те же идентификаторы,
// поэтому по ним всегда находится текущая занятость в журнале.
package slots

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/pkg/types"
)

var (
	// ErrSlotNotInWindow возвращается, когда время начала не совпадает ни с одним слотом окна
	ErrSlotNotInWindow = errors.New("slots: start time is not a slot of the meal window")
)

// slotMinutes длительность слота
const slotMinutes = 60

// Generate делит окно приёма пищи на последовательные часовые слоты.
// Для окна [7,12) получаем 07-08, 08-09, 09-10, 10-11, 11-12.
// Для неизвестного приёма пищи возвращает пустой список.
func Generate(date time.Time, venue domain.Venue, meal domain.Meal) []domain.Slot {
	result, err := GenerateChecked(date, venue, meal)
	if err != nil {
		return []domain.Slot{}
	}
	return result
}

// GenerateChecked как Generate, но сообщает о неизвестном приёме пищи
func GenerateChecked(date time.Time, venue domain.Venue, meal domain.Meal) ([]domain.Slot, error) {
	window, ok := meal.Window()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMeal, meal)
	}

	day := domain.DateOnly(date)
	result := make([]domain.Slot, 0, window.Hours())

	for h := window.Start; h < window.End; h++ {
		start := types.FromHour(h)
		end := types.FromHour(h + 1)

		result = append(result, domain.Slot{
			ID:            domain.SlotID(day, venue.ID, start, end),
			VenueID:       venue.ID,
			Date:          day,
			Meal:          meal,
			Start:         start,
			End:           end,
			Capacity:      venue.Capacity,
			ReservedCount: 0,
		})
	}

	return result, nil
}

// Find возвращает слот окна, начинающийся в start
func Find(date time.Time, venue domain.Venue, meal domain.Meal, start types.TimeString) (domain.Slot, error) {
	generated, err := GenerateChecked(date, venue, meal)
	if err != nil {
		return domain.Slot{}, err
	}

	for _, slot := range generated {
		if slot.Start == start {
			return slot, nil
		}
	}

	return domain.Slot{}, fmt.Errorf("%w: meal=%s start=%s", ErrSlotNotInWindow, meal, start)
}
