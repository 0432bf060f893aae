package create_reservation

import (
	"time"

	catalogModels "github.com/m04kA/SMC-CanteenService/internal/service/catalog/models"
	"github.com/m04kA/SMC-CanteenService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    string                      // ID пользователя из X-User-ID
	VenueID   string                      // ID площадки
	Date      time.Time                   // Дата бронирования (без времени)
	Meal      string                      // Приём пищи: breakfast, lunch, snack, dinner
	StartTime types.TimeString            // Начало часового слота, например "12:00"
	Items     []catalogModels.ItemRequest // Позиции меню (опционально)
}
