package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	catalogModels "github.com/m04kA/SMC-CanteenService/internal/service/catalog/models"
)

// VenueDirectory справочник площадок
type VenueDirectory interface {
	GetVenue(id string) (*domain.Venue, error)
}

// MenuPricer сверяет позиции с меню и считает итог
type MenuPricer interface {
	PriceItems(requests []catalogModels.ItemRequest) ([]domain.LineItem, float64, error)
}

// ReservationStore хранилище бронирований, занимает место в слоте
type ReservationStore interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
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
