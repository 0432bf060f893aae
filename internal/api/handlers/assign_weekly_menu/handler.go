package assign_weekly_menu

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CanteenService/internal/api/handlers"
	"github.com/m04kA/SMC-CanteenService/internal/api/middleware"
	"github.com/m04kA/SMC-CanteenService/internal/service/menu"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMenu        = "некорректное меню: проверьте день недели, приём пищи и типы позиций"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "составлять меню может только повар"
	msgVenueNotFound      = "площадка не найдена"
	msgConsumableNotFound = "позиция меню не найдена"
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

// Handle PUT /api/v1/venues/{venueId}/weekly-menu/{weekday}/{meal}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, weekday, meal := vars["venueId"], vars["weekday"], vars["meal"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /venues/{id}/weekly-menu - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if !actor.CanEditMenu() {
		h.logger.Warn("PUT /venues/{id}/weekly-menu - Access denied: user_id=%s, role=%s", actor.UserID, actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req AssignWeeklyMenuRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id}/weekly-menu - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Assign(r.Context(), req.ToServiceRequest(venueID, weekday, meal, actor.UserID))
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id}/weekly-menu - Invalid menu: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMenu)

		case errors.Is(err, menu.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{id}/weekly-menu - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, menu.ErrConsumableNotFound):
			h.logger.Warn("PUT /venues/{id}/weekly-menu - Consumable not found: %v", err)
			handlers.RespondBadRequest(w, msgConsumableNotFound)

		default:
			h.logger.Error("PUT /venues/{id}/weekly-menu - Failed to assign menu: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id}/weekly-menu - Menu assigned successfully: venue_id=%s, %s/%s, chef_id=%s",
		venueID, result.Weekday, result.Meal, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
