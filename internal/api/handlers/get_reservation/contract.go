package get_reservation

import (
	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

type ReservationService interface {
	GetByID(id string) (*domain.Reservation, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
