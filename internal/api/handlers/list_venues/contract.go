package list_venues

import (
	"github.com/m04kA/SMC-CanteenService/internal/service/catalog/models"
)

type CatalogService interface {
	ListVenues() *models.VenueListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
