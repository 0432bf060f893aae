package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// resolveMeals возвращает запрошенный приём пищи или все по порядку
func resolveMeals(raw string) ([]domain.Meal, error) {
	if strings.TrimSpace(raw) == "" {
		meals := make([]domain.Meal, 0, len(domain.MealWindows))
		for _, w := range domain.MealWindows {
			meals = append(meals, w.Meal)
		}
		return meals, nil
	}

	meal, err := domain.ParseMeal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeal, raw)
	}
	return []domain.Meal{meal}, nil
}

// validateDate проверяет, что дата в горизонте бронирования: с завтрашнего дня
// (сегодня только при sameDay) и не дальше advanceDays.
// advanceDays = 0 снимает ограничение сверху.
func validateDate(requestDate, now time.Time, advanceDays int, sameDay bool) error {
	day := domain.DateOnly(requestDate)
	today := domain.DateOnly(now)

	if day.Before(today) || (day.Equal(today) && !sameDay) {
		return ErrInvalidDate
	}

	if advanceDays == 0 {
		return nil
	}

	if day.After(today.AddDate(0, 0, advanceDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceDays)
	}

	return nil
}

// isStarted слот на сегодня, час начала которого уже наступил
func isStarted(slot domain.Slot, now time.Time) bool {
	if !domain.DateOnly(slot.Date).Equal(domain.DateOnly(now)) {
		return false
	}
	return slot.Start.Hour() <= now.Hour()
}
