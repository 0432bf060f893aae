package get_venue_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CanteenService/internal/api/handlers"
	"github.com/m04kA/SMC-CanteenService/internal/api/middleware"
	"github.com/m04kA/SMC-CanteenService/internal/service/catalog"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
)

const (
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidParams  = "некорректные параметры запроса"
	msgForbidden      = "доступ запрещен"
	msgVenueNotFound  = "площадка не найдена"
	msgNotInitialized = "сервис ещё не готов"
)

type Handler struct {
	service ReservationService
	venues  VenueDirectory
	logger  Logger
}

func NewHandler(service ReservationService, venues VenueDirectory, logger Logger) *Handler {
	return &Handler{
		service: service,
		venues:  venues,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/reservations
// Query params: date (YYYY-MM-DD), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /venues/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if !actor.CanListVenue() {
		h.logger.Warn("GET /venues/{id}/reservations - Access denied: venue_id=%s, user_id=%s, role=%s",
			venueID, actor.UserID, actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	filter, err := ToFilter(venueID, r.URL.Query().Get("date"), r.URL.Query().Get("status"))
	if err != nil {
		h.logger.Warn("GET /venues/{id}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	if _, err := h.venues.GetVenue(venueID); err != nil {
		if errors.Is(err, catalog.ErrVenueNotFound) {
			h.logger.Warn("GET /venues/{id}/reservations - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)
			return
		}
		h.logger.Error("GET /venues/{id}/reservations - Failed to get venue: venue_id=%s, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.ListByVenue(filter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrNotInitialized):
			h.logger.Error("GET /venues/{id}/reservations - Store not initialized")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotInitialized)

		default:
			h.logger.Error("GET /venues/{id}/reservations - Failed to get reservations: venue_id=%s, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/reservations - Reservations retrieved successfully: venue_id=%s, count=%d",
		venueID, len(result))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservationList(result))
}
