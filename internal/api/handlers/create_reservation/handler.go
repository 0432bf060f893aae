package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanteenService/internal/api/handlers"
	"github.com/m04kA/SMC-CanteenService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-CanteenService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidDate           = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime           = "некорректный формат времени начала, ожидается HH:MM"
	msgSlotNotAvailable      = "в выбранном слоте нет свободных мест"
	msgVenueNotFound         = "площадка не найдена"
	msgUnknownMeal           = "неизвестный приём пищи"
	msgInvalidBookingDate    = "некорректная дата бронирования"
	msgDateTooFar            = "дата бронирования слишком далеко в будущем"
	msgInvalidTimeSlot       = "некорректный временной слот"
	msgTooLateToBook         = "слишком поздно для бронирования этого слота"
	msgConsumableNotFound    = "позиция меню не найдена"
	msgConsumableUnavailable = "позиция меню недоступна"
	msgInvalidInput          = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: user_id=%s, venue_id=%s", userID, req.VenueID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrVenueNotFound):
			h.logger.Warn("POST /reservations - Venue not found: venue_id=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createReservation.ErrConsumableNotFound):
			h.logger.Warn("POST /reservations - Consumable not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgConsumableNotFound)

		case errors.Is(err, createReservation.ErrConsumableUnavailable):
			h.logger.Warn("POST /reservations - Consumable unavailable: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgConsumableUnavailable)

		case errors.Is(err, createReservation.ErrUnknownMeal):
			h.logger.Warn("POST /reservations - Unknown meal: %q", req.Meal)
			handlers.RespondBadRequest(w, msgUnknownMeal)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid reservation date: user_id=%s, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			h.logger.Warn("POST /reservations - Date too far in future: user_id=%s, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: user_id=%s, meal=%s, time=%s",
				userID, req.Meal, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: user_id=%s, time=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, venue_id=%s, error=%v",
				userID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, user_id=%s, venue_id=%s",
		result.ID, userID, result.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
