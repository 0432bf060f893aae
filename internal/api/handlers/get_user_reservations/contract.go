package get_user_reservations

import (
	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

type ReservationService interface {
	ListByUser(userID string) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
