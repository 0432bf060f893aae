package get_weekly_menu

import (
	"context"

	"github.com/m04kA/SMC-CanteenService/internal/service/menu/models"
)

type MenuService interface {
	GetWeek(ctx context.Context, venueID string) (*models.WeeklyMenuResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
