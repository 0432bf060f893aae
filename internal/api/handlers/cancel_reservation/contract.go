package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

type ReservationService interface {
	GetByID(id string) (*domain.Reservation, bool)
	Cancel(ctx context.Context, id string, reason string) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
