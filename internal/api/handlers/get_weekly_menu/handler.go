package get_weekly_menu

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CanteenService/internal/api/handlers"
	"github.com/m04kA/SMC-CanteenService/internal/service/menu"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
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

// Handle GET /api/v1/venues/{venueId}/weekly-menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	result, err := h.service.GetWeek(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/weekly-menu - Invalid venue ID: %q", venueID)
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, menu.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/weekly-menu - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{id}/weekly-menu - Failed to get weekly menu: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/weekly-menu - Weekly menu retrieved successfully: venue_id=%s, entries=%d",
		venueID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
