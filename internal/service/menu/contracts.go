package menu

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// Storage порт хранения недельного меню
type Storage interface {
	ListMenu(ctx context.Context, venueID string) ([]domain.MenuEntry, error)
	SaveMenu(ctx context.Context, entry domain.MenuEntry) error
	DeleteMenu(ctx context.Context, key domain.MenuKey) error
}

// Catalog справочник площадок и позиций (*catalog.Service)
type Catalog interface {
	GetVenue(id string) (*domain.Venue, error)
	GetConsumable(id string) (*domain.Consumable, error)
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
