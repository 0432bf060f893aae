package finalize_reservation

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidPaymentMethod = "некорректный способ оплаты, ожидается cash, card или transfer"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "завершить бронирование может только кассир"
	msgNotFound             = "бронирование не найдено"
	msgCannotFinalize       = "отменённое бронирование не может быть завершено"
	msgNotEditable          = "способ оплаты нельзя изменить у неактивного бронирования"
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

// Handle PATCH /api/v1/reservations/{reservationId}/finalize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/finalize - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if !actor.CanFinalize() {
		h.logger.Warn("PATCH /reservations/{id}/finalize - Access denied: reservation_id=%s, user_id=%s, role=%s",
			reservationID, actor.UserID, actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req FinalizeReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/finalize - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	method, err := req.ToPaymentMethod()
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/finalize - Invalid payment method: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentMethod)
		return
	}

	reservation, err := h.service.Finalize(r.Context(), reservationID, method)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/finalize - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/finalize - Cannot finalize: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgCannotFinalize)

		case errors.Is(err, reservations.ErrNotEditable):
			h.logger.Warn("PATCH /reservations/{id}/finalize - Payment method on inactive reservation: reservation_id=%s",
				reservationID)
			handlers.RespondConflict(w, msgNotEditable)

		default:
			h.logger.Error("PATCH /reservations/{id}/finalize - Failed to finalize reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/finalize - Reservation finalized successfully: reservation_id=%s, cashier_id=%s",
		reservationID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservation(reservation))
}
