// Package reservations владеет коллекцией бронирований и журналом занятости.
// Оба изменяются только вместе, под одним мьютексом: счётчик слота всегда
// равен числу ACTIVE-бронирований, ссылающихся на этот слот.
package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/internal/service/migration"
	"github.com/m04kA/SMC-CanteenService/internal/service/occupancy"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CanteenService/internal/service/slots"
)

// Service хранилище бронирований
type Service struct {
	mu           sync.RWMutex
	ready        bool
	reservations map[string]*domain.Reservation
	ledger       *occupancy.Ledger

	storage      Storage
	venues       VenueDirectory
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр хранилища бронирований.
// metrics может быть nil.
func NewService(
	storage Storage,
	venues VenueDirectory,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		reservations: make(map[string]*domain.Reservation),
		ledger:       occupancy.NewLedger(),
		storage:      storage,
		venues:       venues,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Init загружает сохранённое состояние, нормализует статусы старых записей,
// пересчитывает журнал занятости и сохраняет записи, изменённые миграцией.
// До успешного Init хранилище не принимает операций.
func (s *Service) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("Init: loading persisted reservations")

	loaded, err := s.storage.LoadAll(ctx)
	if err != nil {
		s.logger.Error("Init: failed to load reservations: %v", err)
		return fmt.Errorf("%w: Init - load: %v", ErrPersistence, err)
	}

	normalized, report := migration.Normalize(loaded)
	if report.StatusCoerced > 0 {
		s.logger.Warn("Init: coerced %d unrecognized statuses to %s: %v",
			report.StatusCoerced, domain.StatusActive, report.LegacyStatuses)
	}
	if report.MealsRenamed > 0 {
		s.logger.Info("Init: renamed %d legacy meal names", report.MealsRenamed)
	}

	byID := make(map[string]*domain.Reservation, len(normalized))
	changed := make([]*domain.Reservation, 0, len(report.ChangedIDs))
	changedSet := make(map[string]struct{}, len(report.ChangedIDs))
	for _, id := range report.ChangedIDs {
		changedSet[id] = struct{}{}
	}
	for _, r := range normalized {
		if _, dup := byID[r.ID]; dup {
			s.logger.Warn("Init: duplicate reservation id=%s, keeping the first record", r.ID)
			continue
		}
		byID[r.ID] = r
		if _, ok := changedSet[r.ID]; ok {
			changed = append(changed, r)
		}
	}

	if len(changed) > 0 {
		if err := s.storage.SaveAll(ctx, changed); err != nil {
			s.logger.Error("Init: failed to persist %d migrated reservations: %v", len(changed), err)
			return fmt.Errorf("%w: Init - save migrated: %v", ErrPersistence, err)
		}
		s.logger.Info("Init: persisted %d migrated reservations", len(changed))
	}

	list := make([]*domain.Reservation, 0, len(byID))
	for _, r := range byID {
		list = append(list, r)
	}
	slotsInUse := s.ledger.Rebuild(list)
	s.warnOverbooked(byID)

	s.reservations = byID
	s.ready = true
	s.metrics.SetOccupiedSeats(s.ledger.Total())

	s.logger.Info("Init: loaded %d reservations, %d slots in use", len(byID), slotsInUse)
	return nil
}

// warnOverbooked сообщает о слотах, где старые данные превышают вместимость.
// Журнал отражает фактическое число бронирований, новые брони в такой слот не пройдут.
func (s *Service) warnOverbooked(byID map[string]*domain.Reservation) {
	venueOfSlot := make(map[string]string)
	for _, r := range byID {
		if r.HoldsSlot() {
			venueOfSlot[*r.SlotID] = r.VenueID
		}
	}

	for slotID, count := range s.ledger.Snapshot() {
		venue, err := s.venues.GetVenue(venueOfSlot[slotID])
		if err != nil {
			s.logger.Warn("Init: slot %s references unknown venue id=%s", slotID, venueOfSlot[slotID])
			continue
		}
		if count > venue.Capacity {
			s.logger.Warn("Init: slot %s is overbooked: %d/%d", slotID, count, venue.Capacity)
		}
	}
}

// Create создает бронирование. Статус всегда ACTIVE независимо от входных данных.
// Если указан слот, место в нём занимается до записи бронирования:
// при отсутствии мест возвращается ErrSlotUnavailable и ничего не сохраняется.
func (s *Service) Create(ctx context.Context, input *domain.Reservation) (*domain.Reservation, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: reservation is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, ErrNotInitialized
	}

	r := input.Clone()
	if err := validateNew(r); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if _, exists := s.reservations[r.ID]; exists {
		s.logger.Warn("Create: reservation id=%s already exists", r.ID)
		return nil, ErrDuplicateReservation
	}

	venue, err := s.venues.GetVenue(r.VenueID)
	if err != nil {
		s.logger.Warn("Create: venue id=%s not found", r.VenueID)
		return nil, ErrVenueNotFound
	}

	now := s.timeProvider.Now()
	r.Date = domain.DateOnly(r.Date)
	r.Status = domain.StatusActive
	r.CancelledAt = nil
	r.FinalizedAt = nil
	r.CancellationReason = nil
	r.CreatedAt = now
	r.UpdatedAt = now

	if r.SlotID != nil {
		slot, err := resolveSlot(r, *venue)
		if err != nil {
			s.logger.Warn("Create: %v", err)
			return nil, err
		}

		if !s.ledger.TryReserve(slot) {
			s.metrics.CapacityRejected(venue.ID)
			s.logger.Warn("Create: slot %s has no availability, %d/%d taken",
				slot.ID, s.ledger.Count(slot.ID), venue.Capacity)
			return nil, ErrSlotUnavailable
		}
	}

	s.reservations[r.ID] = r

	if err := s.storage.Save(ctx, r); err != nil {
		delete(s.reservations, r.ID)
		if r.SlotID != nil {
			s.ledger.Release(*r.SlotID)
		}
		s.logger.Error("Create: failed to persist reservation id=%s, rolled back: %v", r.ID, err)
		return nil, fmt.Errorf("%w: Create - save: %v", ErrPersistence, err)
	}

	s.metrics.ReservationCreated(venue.ID)
	s.metrics.SetOccupiedSeats(s.ledger.Total())

	if r.SlotID != nil {
		s.logger.Info("Create: reservation id=%s user=%s slot=%s, %d/%d taken",
			r.ID, r.UserID, *r.SlotID, s.ledger.Count(*r.SlotID), venue.Capacity)
	} else {
		s.logger.Info("Create: reservation id=%s user=%s venue=%s without slot", r.ID, r.UserID, r.VenueID)
	}

	return r.Clone(), nil
}

// Cancel отменяет активное бронирование и освобождает его слот.
// Повторная отмена ничего не меняет. Завершённое бронирование отменить нельзя.
func (s *Service) Cancel(ctx context.Context, id string, reason string) (*domain.Reservation, error) {
	status := domain.StatusCancelled
	patch := models.Patch{Status: &status}
	if reason != "" {
		patch.CancellationReason = &reason
	}
	return s.Update(ctx, id, patch)
}

// Finalize завершает активное бронирование (оплата на кассе) и освобождает слот
func (s *Service) Finalize(ctx context.Context, id string, method *domain.PaymentMethod) (*domain.Reservation, error) {
	status := domain.StatusFinalized
	return s.Update(ctx, id, models.Patch{Status: &status, PaymentMethod: method})
}

// Update применяет частичное обновление.
// Смена статуса проходит через domain.ResolveTransition, который определяет,
// нужно ли освободить слот. Повторная установка того же статуса ничего не меняет.
// Способ оплаты и позиции меняются только у активного бронирования.
func (s *Service) Update(ctx context.Context, id string, patch models.Patch) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, ErrNotInitialized
	}

	r, ok := s.reservations[id]
	if !ok {
		s.logger.Warn("Update: reservation id=%s not found", id)
		return nil, ErrReservationNotFound
	}

	if patch.IsEmpty() {
		return r.Clone(), nil
	}

	target := r.Status
	if patch.Status != nil {
		target = *patch.Status
	}

	transition, err := domain.ResolveTransition(r.Status, target)
	if err != nil {
		s.logger.Warn("Update: reservation id=%s: %v", id, err)
		if errors.Is(err, domain.ErrUnknownStatus) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, target)
	}

	if patch.CancellationReason != nil {
		if target != domain.StatusCancelled {
			return nil, fmt.Errorf("%w: cancellation reason requires status %s", ErrInvalidInput, domain.StatusCancelled)
		}
		if len(*patch.CancellationReason) > domain.MaxCancellationReasonLength {
			return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
		}
	}

	if (patch.Items == nil) != (patch.Total == nil) {
		return nil, fmt.Errorf("%w: items and total must be updated together", ErrInvalidInput)
	}
	if patch.Total != nil && *patch.Total < 0 {
		return nil, fmt.Errorf("%w: total must not be negative", ErrInvalidInput)
	}

	editsFields := patch.PaymentMethod != nil || patch.Items != nil
	if editsFields && !r.IsActive() {
		s.logger.Warn("Update: reservation id=%s is %s, fields cannot change", id, r.Status)
		return nil, ErrNotEditable
	}

	// Повторная отмена/завершение: ничего не делаем, слот второй раз не освобождается
	if transition == nil && !editsFields {
		s.logger.Info("Update: reservation id=%s already %s, nothing to do", id, r.Status)
		return r.Clone(), nil
	}

	before := r.Clone()
	now := s.timeProvider.Now()

	if patch.PaymentMethod != nil {
		method := *patch.PaymentMethod
		r.PaymentMethod = &method
	}
	if patch.Items != nil {
		r.Items = append([]domain.LineItem(nil), (*patch.Items)...)
		r.Total = *patch.Total
	}

	released := false
	if transition != nil {
		r.Status = transition.To
		switch transition.To {
		case domain.StatusCancelled:
			r.CancelledAt = &now
			if patch.CancellationReason != nil {
				reason := *patch.CancellationReason
				r.CancellationReason = &reason
			}
		case domain.StatusFinalized:
			r.FinalizedAt = &now
		}
		if transition.ReleasesSlot && before.HoldsSlot() {
			s.ledger.Release(*before.SlotID)
			released = true
		}
	}
	r.UpdatedAt = now

	if err := s.storage.Save(ctx, r); err != nil {
		*r = *before
		if released {
			s.ledger.Restore(*before.SlotID)
		}
		s.logger.Error("Update: failed to persist reservation id=%s, rolled back: %v", id, err)
		return nil, fmt.Errorf("%w: Update - save: %v", ErrPersistence, err)
	}

	if transition != nil {
		switch transition.To {
		case domain.StatusCancelled:
			s.metrics.ReservationCancelled(r.VenueID)
		case domain.StatusFinalized:
			s.metrics.ReservationFinalized(r.VenueID)
		}
		s.metrics.SetOccupiedSeats(s.ledger.Total())
		s.logger.Info("Update: reservation id=%s %s -> %s, slot released=%t",
			id, transition.From, transition.To, released)
	} else {
		s.logger.Info("Update: reservation id=%s updated, items=%d total=%.2f", id, len(r.Items), r.Total)
	}

	return r.Clone(), nil
}

// GetByID возвращает копию бронирования или false, если его нет
func (s *Service) GetByID(id string) (*domain.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, false
	}

	r, ok := s.reservations[id]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// ListByUser возвращает бронирования пользователя в порядке отображения
func (s *Service) ListByUser(userID string) ([]*domain.Reservation, error) {
	return s.list(func(r *domain.Reservation) bool {
		return r.UserID == userID
	})
}

// ListByVenue возвращает бронирования площадки с фильтрацией по дате и статусу
func (s *Service) ListByVenue(filter domain.VenueReservationsFilter) ([]*domain.Reservation, error) {
	var day *string
	if filter.Date != nil {
		d := filter.Date.Format(domain.DateFormat)
		day = &d
	}

	return s.list(func(r *domain.Reservation) bool {
		if r.VenueID != filter.VenueID {
			return false
		}
		if day != nil && r.Date.Format(domain.DateFormat) != *day {
			return false
		}
		if filter.Status != nil && r.Status != *filter.Status {
			return false
		}
		return true
	})
}

func (s *Service) list(match func(r *domain.Reservation) bool) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, ErrNotInitialized
	}

	result := make([]*domain.Reservation, 0)
	for _, r := range s.reservations {
		if match(r) {
			result = append(result, r.Clone())
		}
	}

	sortForListing(result)
	return result, nil
}

// Occupancy накладывает текущую занятость на сгенерированные слоты
func (s *Service) Occupancy(slots []domain.Slot) []domain.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ledger.Annotate(slots)
}

// SlotCount возвращает количество активных бронирований в слоте
func (s *Service) SlotCount(slotID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ledger.Count(slotID)
}

// validateNew проверяет обязательные поля нового бронирования
func validateNew(r *domain.Reservation) error {
	if strings.TrimSpace(r.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.VenueID) == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if r.Total < 0 {
		return fmt.Errorf("%w: total must not be negative", ErrInvalidInput)
	}
	for _, item := range r.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %s quantity must be positive", ErrInvalidInput, item.ConsumableID)
		}
	}
	return nil
}

// resolveSlot находит сгенерированный слот по приёму пищи и времени начала
// и проверяет, что SlotID бронирования совпадает с его ID.
// Заполняет SlotEnd, если он не передан.
func resolveSlot(r *domain.Reservation, venue domain.Venue) (domain.Slot, error) {
	if r.Meal == nil || r.SlotStart == nil {
		return domain.Slot{}, fmt.Errorf("%w: slot %q requires meal and start time", ErrInvalidInput, *r.SlotID)
	}

	slot, err := slots.Find(r.Date, venue, *r.Meal, *r.SlotStart)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("%w: slot %q: %v", ErrInvalidInput, *r.SlotID, err)
	}

	if slot.ID != *r.SlotID {
		return domain.Slot{}, fmt.Errorf("%w: slot %q does not match venue=%s date=%s meal=%s start=%s",
			ErrInvalidInput, *r.SlotID, venue.ID, r.Date.Format(domain.DateFormat), *r.Meal, *r.SlotStart)
	}
	if r.SlotEnd != nil && *r.SlotEnd != slot.End {
		return domain.Slot{}, fmt.Errorf("%w: slot %q ends at %s, not %s", ErrInvalidInput, slot.ID, slot.End, *r.SlotEnd)
	}

	r.SlotEnd = &slot.End
	return slot, nil
}
