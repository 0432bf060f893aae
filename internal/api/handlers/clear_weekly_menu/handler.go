package clear_weekly_menu

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CanteenService/internal/api/handlers"
	"github.com/m04kA/SMC-CanteenService/internal/api/middleware"
	"github.com/m04kA/SMC-CanteenService/internal/service/menu"
)

const (
	msgInvalidCell   = "некорректный день недели или приём пищи"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "очищать меню может только повар"
	msgVenueNotFound = "площадка не найдена"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/venues/{venueId}/weekly-menu/{weekday}/{meal}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, weekday, meal := vars["venueId"], vars["weekday"], vars["meal"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("DELETE /venues/{id}/weekly-menu - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if !actor.CanEditMenu() {
		h.logger.Warn("DELETE /venues/{id}/weekly-menu - Access denied: user_id=%s, role=%s", actor.UserID, actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.Clear(r.Context(), venueID, weekday, meal); err != nil {
		switch {
		case errors.Is(err, menu.ErrInvalidInput):
			h.logger.Warn("DELETE /venues/{id}/weekly-menu - Invalid cell: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCell)

		case errors.Is(err, menu.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/{id}/weekly-menu - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("DELETE /venues/{id}/weekly-menu - Failed to clear menu: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /venues/{id}/weekly-menu - Menu cleared successfully: venue_id=%s, %s/%s, chef_id=%s",
		venueID, weekday, meal, actor.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
