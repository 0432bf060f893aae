package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMeal возвращается для приёма пищи вне фиксированной таблицы
var ErrUnknownMeal = errors.New("unknown meal")

// Meal приём пищи
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealSnack     Meal = "snack"
	MealDinner    Meal = "dinner"
)

// MealWindow полуоткрытый интервал часов [Start, End)
type MealWindow struct {
	Meal  Meal
	Start int
	End   int
}

// Hours количество часовых слотов в окне
func (w MealWindow) Hours() int {
	return w.End - w.Start
}

// Contains returns true if the hour belongs to the window
func (w MealWindow) Contains(hour int) bool {
	return hour >= w.Start && hour < w.End
}

// MealWindows фиксированная таблица окон в порядке следования
var MealWindows = []MealWindow{
	{Meal: MealBreakfast, Start: 7, End: 12},
	{Meal: MealLunch, Start: 12, End: 16},
	{Meal: MealSnack, Start: 16, End: 20},
	{Meal: MealDinner, Start: 20, End: 23},
}

// legacyMealNames названия из первой версии приложения
var legacyMealNames = map[string]Meal{
	"desayuno": MealBreakfast,
	"almuerzo": MealLunch,
	"merienda": MealSnack,
	"cena":     MealDinner,
}

// Window возвращает окно для приёма пищи
func (m Meal) Window() (MealWindow, bool) {
	for _, w := range MealWindows {
		if w.Meal == m {
			return w, true
		}
	}
	return MealWindow{}, false
}

// IsValid returns true for one of the four configured meals
func (m Meal) IsValid() bool {
	_, ok := m.Window()
	return ok
}

// ParseMeal парсит название без учёта регистра, включая старые названия
func ParseMeal(raw string) (Meal, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if m := Meal(normalized); m.IsValid() {
		return m, nil
	}
	if m, ok := legacyMealNames[normalized]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMeal, raw)
}
