package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// VenueDirectory справочник площадок
type VenueDirectory interface {
	GetVenue(id string) (*domain.Venue, error)
}

// OccupancyReader текущая занятость слотов
type OccupancyReader interface {
	Occupancy(slots []domain.Slot) []domain.Slot
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
