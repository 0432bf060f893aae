package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CanteenService/internal/api/handlers"
	"github.com/m04kA/SMC-CanteenService/internal/api/middleware"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
)

const (
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgNotInitialized = "сервис ещё не готов"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if !actor.CanListUser(userID) {
		h.logger.Warn("GET /users/{userId}/reservations - Access denied: user_id=%s, actor_id=%s",
			userID, actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.ListByUser(userID)
	if err != nil {
		if errors.Is(err, reservations.ErrNotInitialized) {
			h.logger.Error("GET /users/{userId}/reservations - Store not initialized")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotInitialized)
			return
		}
		h.logger.Error("GET /users/{userId}/reservations - Failed to get reservations: user_id=%s, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/reservations - Reservations retrieved successfully: user_id=%s, count=%d",
		userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservationList(result))
}
