package finalize_reservation

import (
	"context"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

type ReservationService interface {
	Finalize(ctx context.Context, id string, method *domain.PaymentMethod) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
