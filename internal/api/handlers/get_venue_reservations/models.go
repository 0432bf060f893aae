package get_venue_reservations

import (
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
)

// ToFilter формирует фильтр из query параметров
func ToFilter(venueID, dateStr, statusStr string) (domain.VenueReservationsFilter, error) {
	filter := domain.VenueReservationsFilter{VenueID: venueID}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	if statusStr != "" {
		status, err := models.ToDomainStatus(statusStr)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}
