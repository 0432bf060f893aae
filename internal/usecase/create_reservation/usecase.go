package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	catalogService "github.com/m04kA/SMC-CanteenService/internal/service/catalog"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CanteenService/internal/service/slots"
	"github.com/m04kA/SMC-CanteenService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	venues       VenueDirectory
	pricer       MenuPricer
	store        ReservationStore
	advanceDays  int
	sameDay      bool
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venues VenueDirectory,
	pricer MenuPricer,
	store ReservationStore,
	advanceDays int,
	sameDay bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		venues:       venues,
		pricer:       pricer,
		store:        store,
		advanceDays:  advanceDays,
		sameDay:      sameDay,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка свободных мест и запись бронирования атомарны внутри хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("CreateReservation: user=%s, venue=%s, date=%s, meal=%s, time=%s, items=%d",
		req.UserID, req.VenueID, req.Date.Format(domain.DateFormat), req.Meal, req.StartTime, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	meal, err := domain.ParseMeal(req.Meal)
	if err != nil {
		uc.logger.Warn("CreateReservation: unknown meal=%q", req.Meal)
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeal, req.Meal)
	}

	// 2. Проверяем дату и время относительно текущего момента
	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now, uc.advanceDays, uc.sameDay); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	if err := validateStartTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: start time validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем площадку
	venue, err := uc.venues.GetVenue(req.VenueID)
	if err != nil {
		uc.logger.Warn("CreateReservation: venue id=%s not found", req.VenueID)
		return nil, ErrVenueNotFound
	}

	// 4. Находим слот окна приёма пищи
	slot, err := slots.Find(req.Date, *venue, meal, req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 5. Сверяем позиции с меню и считаем итог
	items, total, err := uc.pricer.PriceItems(req.Items)
	if err != nil {
		uc.logger.Warn("CreateReservation: items rejected: %v", err)
		return nil, mapPricingError(err)
	}

	// 6. Создаем бронирование, место в слоте занимается атомарно
	reservation := &domain.Reservation{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		VenueID:   venue.ID,
		SlotID:    ptr.Ptr(slot.ID),
		Meal:      ptr.Ptr(meal),
		SlotStart: ptr.Ptr(slot.Start),
		SlotEnd:   ptr.Ptr(slot.End),
		Date:      slot.Date,
		Status:    domain.StatusActive,
		Items:     items,
		Total:     total,
	}

	created, err := uc.store.Create(ctx, reservation)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrSlotUnavailable):
			uc.logger.Warn("CreateReservation: slot %s is full", slot.ID)
			return nil, ErrSlotNotAvailable
		case errors.Is(err, reservations.ErrVenueNotFound):
			return nil, ErrVenueNotFound
		case errors.Is(err, reservations.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s slot=%s total=%.2f",
		created.ID, slot.ID, created.Total)

	return models.FromDomainReservation(created), nil
}

func mapPricingError(err error) error {
	switch {
	case errors.Is(err, catalogService.ErrConsumableNotFound):
		return fmt.Errorf("%w: %v", ErrConsumableNotFound, err)
	case errors.Is(err, catalogService.ErrConsumableUnavailable):
		return fmt.Errorf("%w: %v", ErrConsumableUnavailable, err)
	case errors.Is(err, catalogService.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: price items: %v", ErrInternal, err)
	}
}
