package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// Storage порт хранения бронирований.
// Журнал занятости не хранится: он восстанавливается из бронирований при загрузке.
type Storage interface {
	LoadAll(ctx context.Context) ([]*domain.Reservation, error)
	Save(ctx context.Context, reservation *domain.Reservation) error
	SaveAll(ctx context.Context, reservations []*domain.Reservation) error
}

// VenueDirectory справочник площадок, источник вместимости слотов
type VenueDirectory interface {
	GetVenue(id string) (*domain.Venue, error)
}

// MetricsRecorder интерфейс для бизнес-метрик
type MetricsRecorder interface {
	ReservationCreated(venueID string)
	ReservationCancelled(venueID string)
	ReservationFinalized(venueID string)
	CapacityRejected(venueID string)
	SetOccupiedSeats(n int)
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

type noopMetrics struct{}

func (noopMetrics) ReservationCreated(string)   {}
func (noopMetrics) ReservationCancelled(string) {}
func (noopMetrics) ReservationFinalized(string) {}
func (noopMetrics) CapacityRejected(string)     {}
func (noopMetrics) SetOccupiedSeats(int)        {}
