package list_consumables

import (
	"github.com/m04kA/SMC-CanteenService/internal/service/catalog/models"
)

type CatalogService interface {
	ListConsumables(kind string) (*models.ConsumableListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
