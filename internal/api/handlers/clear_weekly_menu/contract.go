package clear_weekly_menu

import "context"

type MenuService interface {
	Clear(ctx context.Context, venueID, weekday, meal string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
