package get_venue_reservations

import (
	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

type ReservationService interface {
	ListByVenue(filter domain.VenueReservationsFilter) ([]*domain.Reservation, error)
}

type VenueDirectory interface {
	GetVenue(id string) (*domain.Venue, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
