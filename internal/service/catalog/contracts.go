package catalog

import "github.com/m04kA/SMC-CanteenService/internal/domain"

// Repository интерфейс справочника площадок и меню
type Repository interface {
	GetVenue(id string) (*domain.Venue, error)
	ListVenues() []domain.Venue
	GetConsumable(id string) (*domain.Consumable, error)
	ListConsumables(kind *domain.ConsumableType) []domain.Consumable
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
