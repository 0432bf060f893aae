package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	VenueID string    // ID площадки
	Date    time.Time // Дата (без времени)
	Meal    string    // Приём пищи, пусто = все приёмы пищи за день
}

// Response модель ответа со списком слотов
type Response struct {
	VenueID string
	Date    time.Time
	Slots   []Slot
}

// Slot часовой слот с текущей занятостью
type Slot struct {
	ID             string
	Meal           domain.Meal
	Start          types.TimeString
	End            types.TimeString
	Capacity       int
	ReservedCount  int
	AvailableSpots int
}
