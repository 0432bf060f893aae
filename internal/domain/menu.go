package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownWeekday возвращается для нераспознанного дня недели
var ErrUnknownWeekday = errors.New("unknown weekday")

// Weekdays порядок дней в недельном плане, неделя начинается с понедельника
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
	// Названия из первой версии приложения
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"miércoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"sábado":    time.Saturday,
	"domingo":   time.Sunday,
}

// ParseWeekday парсит день недели без учёта регистра
func ParseWeekday(raw string) (time.Weekday, error) {
	if day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, raw)
}

// WeekdayName название дня в нижнем регистре ("monday")
func WeekdayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}

// MenuKey ячейка недельного плана
type MenuKey struct {
	VenueID string
	Weekday time.Weekday
	Meal    Meal
}

// MenuEntry меню, назначенное поваром на день недели и приём пищи площадки
type MenuEntry struct {
	MenuKey
	DishIDs    []string
	DrinkIDs   []string
	DessertIDs []string
	UpdatedBy  string
	UpdatedAt  time.Time
}

// IsEmpty returns true if no consumable is assigned
func (e MenuEntry) IsEmpty() bool {
	return len(e.DishIDs)+len(e.DrinkIDs)+len(e.DessertIDs) == 0
}

// IDs позиции по типу
func (e MenuEntry) IDs(kind ConsumableType) []string {
	switch kind {
	case ConsumableDish:
		return e.DishIDs
	case ConsumableDrink:
		return e.DrinkIDs
	case ConsumableDessert:
		return e.DessertIDs
	}
	return nil
}

// Clone глубокая копия
func (e MenuEntry) Clone() MenuEntry {
	c := e
	c.DishIDs = append([]string(nil), e.DishIDs...)
	c.DrinkIDs = append([]string(nil), e.DrinkIDs...)
	c.DessertIDs = append([]string(nil), e.DessertIDs...)
	return c
}

// Less порядок плана: день недели с понедельника, затем приём пищи
func (k MenuKey) Less(other MenuKey) bool {
	if k.VenueID != other.VenueID {
		return k.VenueID < other.VenueID
	}
	if a, b := weekdayIndex(k.Weekday), weekdayIndex(other.Weekday); a != b {
		return a < b
	}
	return mealIndex(k.Meal) < mealIndex(other.Meal)
}

func weekdayIndex(day time.Weekday) int {
	return (int(day) + 6) % 7
}

func mealIndex(m Meal) int {
	for i, w := range MealWindows {
		if w.Meal == m {
			return i
		}
	}
	return len(MealWindows)
}
