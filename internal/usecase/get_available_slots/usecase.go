package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/internal/service/slots"
)

// UseCase use case для получения доступных слотов площадки
type UseCase struct {
	venues       VenueDirectory
	occupancy    OccupancyReader
	advanceDays  int
	sameDay      bool
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venues VenueDirectory,
	occupancy OccupancyReader,
	advanceDays int,
	sameDay bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		venues:       venues,
		occupancy:    occupancy,
		advanceDays:  advanceDays,
		sameDay:      sameDay,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute генерирует часовые слоты и накладывает на них текущую занятость.
// Для сегодняшней даты начавшиеся слоты не возвращаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: venue=%s, date=%s, meal=%q",
		req.VenueID, req.Date.Format(domain.DateFormat), req.Meal)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	meals, err := resolveMeals(req.Meal)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 2. Проверяем горизонт бронирования
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.advanceDays, uc.sameDay); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем площадку
	venue, err := uc.venues.GetVenue(req.VenueID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: venue id=%s not found", req.VenueID)
		return nil, ErrVenueNotFound
	}

	// 4. Генерируем слоты по окнам приёмов пищи
	generated := make([]domain.Slot, 0)
	for _, meal := range meals {
		mealSlots, err := slots.GenerateChecked(req.Date, *venue, meal)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate slots for meal=%s: %v", meal, err)
			return nil, fmt.Errorf("%w: generate slots: %v", ErrInternal, err)
		}
		for _, s := range mealSlots {
			if !isStarted(s, now) {
				generated = append(generated, s)
			}
		}
	}

	// 5. Накладываем занятость из журнала
	annotated := uc.occupancy.Occupancy(generated)

	result := make([]Slot, 0, len(annotated))
	for _, s := range annotated {
		result = append(result, Slot{
			ID:             s.ID,
			Meal:           s.Meal,
			Start:          s.Start,
			End:            s.End,
			Capacity:       s.Capacity,
			ReservedCount:  s.ReservedCount,
			AvailableSpots: s.AvailableSpots(),
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for venue=%s, date=%s",
		len(result), req.VenueID, req.Date.Format(domain.DateFormat))

	return &Response{
		VenueID: venue.ID,
		Date:    domain.DateOnly(req.Date),
		Slots:   result,
	}, nil
}
