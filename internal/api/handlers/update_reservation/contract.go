package update_reservation

import (
	"context"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	catalogModels "github.com/m04kA/SMC-CanteenService/internal/service/catalog/models"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(id string) (*domain.Reservation, bool)
	Update(ctx context.Context, id string, patch models.Patch) (*domain.Reservation, error)
}

// MenuPricer пересчитывает позиции и итог по каталогу
type MenuPricer interface {
	PriceItems(requests []catalogModels.ItemRequest) ([]domain.LineItem, float64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
