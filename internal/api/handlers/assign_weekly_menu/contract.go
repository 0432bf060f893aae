package assign_weekly_menu

import (
	"context"

	"github.com/m04kA/SMC-CanteenService/internal/service/menu/models"
)

type MenuService interface {
	Assign(ctx context.Context, req *models.AssignRequest) (*models.MenuEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
