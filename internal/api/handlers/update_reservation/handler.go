package update_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CanteenService/internal/api/handlers"
	"github.com/m04kA/SMC-CanteenService/internal/api/middleware"
	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/internal/service/catalog"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidStatus         = "некорректный статус, ожидается ACTIVE, FINALIZED или CANCELLED"
	msgInvalidPaymentMethod  = "некорректный способ оплаты, ожидается cash, card или transfer"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgNotFound              = "бронирование не найдено"
	msgForbidden             = "доступ запрещен"
	msgInvalidTransition     = "недопустимая смена статуса"
	msgNotEditable           = "неактивное бронирование нельзя изменить"
	msgInvalidData           = "некорректные данные бронирования"
	msgConsumableNotFound    = "позиция меню не найдена"
	msgConsumableUnavailable = "позиция меню недоступна"
)

type Handler struct {
	service ReservationService
	pricer  MenuPricer
	logger  Logger
}

func NewHandler(service ReservationService, pricer MenuPricer, logger Logger) *Handler {
	return &Handler{
		service: service,
		pricer:  pricer,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}
// Body: status, paymentMethod, cancellationReason, items (все поля опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request: %v", err)
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)
		}
		return
	}

	current, found := h.service.GetByID(reservationID)
	if !found {
		h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	if !allowed(actor, current, patch, req.Items != nil) {
		h.logger.Warn("PATCH /reservations/{id} - Access denied: reservation_id=%s, user_id=%s, role=%s",
			reservationID, actor.UserID, actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if req.Items != nil {
		items, total, err := h.pricer.PriceItems(*req.Items)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrConsumableNotFound):
				h.logger.Warn("PATCH /reservations/{id} - Consumable not found: %v", err)
				handlers.RespondNotFound(w, msgConsumableNotFound)

			case errors.Is(err, catalog.ErrConsumableUnavailable):
				h.logger.Warn("PATCH /reservations/{id} - Consumable unavailable: %v", err)
				handlers.RespondBadRequest(w, msgConsumableUnavailable)

			case errors.Is(err, catalog.ErrInvalidInput):
				h.logger.Warn("PATCH /reservations/{id} - Invalid items: %v", err)
				handlers.RespondBadRequest(w, msgInvalidData)

			default:
				h.logger.Error("PATCH /reservations/{id} - Failed to price items: reservation_id=%s, error=%v",
					reservationID, err)
				handlers.RespondInternalError(w)
			}
			return
		}
		patch.Items = &items
		patch.Total = &total
	}

	reservation, err := h.service.Update(r.Context(), reservationID, patch)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id} - Invalid transition: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrNotEditable):
			h.logger.Warn("PATCH /reservations/{id} - Not editable: reservation_id=%s, status=%s",
				reservationID, current.Status)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid data: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%s, user_id=%s, status=%s",
		reservationID, actor.UserID, reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservation(reservation))
}

// allowed проверяет права на каждую часть изменения
func allowed(actor domain.Actor, current *domain.Reservation, patch models.Patch, editsItems bool) bool {
	switch targetStatus(patch, current.Status) {
	case domain.StatusFinalized:
		if current.Status != domain.StatusFinalized && !actor.CanFinalize() {
			return false
		}
	case domain.StatusCancelled:
		if current.Status != domain.StatusCancelled && !actor.CanCancel(current) {
			return false
		}
	}

	if patch.PaymentMethod != nil || editsItems {
		return actor.CanEdit(current)
	}
	return actor.CanView(current)
}
