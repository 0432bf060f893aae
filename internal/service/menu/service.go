// Package menu недельное меню площадок: повар назначает блюда, напитки и десерты
// на день недели и приём пищи.
package menu

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	catalogService "github.com/m04kA/SMC-CanteenService/internal/service/catalog"
	"github.com/m04kA/SMC-CanteenService/internal/service/menu/models"
)

var menuKinds = []domain.ConsumableType{
	domain.ConsumableDish,
	domain.ConsumableDrink,
	domain.ConsumableDessert,
}

// Service сервис недельного меню
type Service struct {
	storage      Storage
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(storage Storage, catalog Catalog, logger Logger) *Service {
	return &Service{
		storage:      storage,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetWeek возвращает план площадки по дням с понедельника и приёмам пищи.
// Позиции, удалённые из каталога, пропускаются, цена считается по текущему каталогу.
func (s *Service) GetWeek(ctx context.Context, venueID string) (*models.WeeklyMenuResponse, error) {
	if err := s.checkVenue(venueID); err != nil {
		return nil, err
	}

	entries, err := s.storage.ListMenu(ctx, venueID)
	if err != nil {
		s.logger.Error("GetWeek: failed to load menu venue_id=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetWeek - list: %v", ErrPersistence, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Less(entries[j].MenuKey) })

	resp := &models.WeeklyMenuResponse{
		VenueID: venueID,
		Entries: make([]models.MenuEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, s.render(e))
	}
	return resp, nil
}

// Assign заменяет меню ячейки целиком. Позиции должны существовать в каталоге
// и иметь тип своего списка, повторы убираются.
// Пустое назначение очищает ячейку.
func (s *Service) Assign(ctx context.Context, req *models.AssignRequest) (*models.MenuEntryResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	key, err := s.parseKey(req.VenueID, req.Weekday, req.Meal)
	if err != nil {
		s.logger.Warn("Assign: %v", err)
		return nil, err
	}

	entry := domain.MenuEntry{
		MenuKey:   key,
		UpdatedBy: req.UpdatedBy,
		UpdatedAt: s.timeProvider.Now(),
	}
	if entry.DishIDs, err = s.resolveIDs(domain.ConsumableDish, req.DishIDs); err != nil {
		return nil, err
	}
	if entry.DrinkIDs, err = s.resolveIDs(domain.ConsumableDrink, req.DrinkIDs); err != nil {
		return nil, err
	}
	if entry.DessertIDs, err = s.resolveIDs(domain.ConsumableDessert, req.DessertIDs); err != nil {
		return nil, err
	}

	if entry.IsEmpty() {
		if err := s.storage.DeleteMenu(ctx, key); err != nil {
			s.logger.Error("Assign: failed to clear %s: %v", describe(key), err)
			return nil, fmt.Errorf("%w: Assign - delete: %v", ErrPersistence, err)
		}
		s.logger.Info("Assign: empty menu, %s cleared by user_id=%s", describe(key), req.UpdatedBy)
		resp := s.render(domain.MenuEntry{MenuKey: key})
		return &resp, nil
	}

	if err := s.storage.SaveMenu(ctx, entry); err != nil {
		s.logger.Error("Assign: failed to save %s: %v", describe(key), err)
		return nil, fmt.Errorf("%w: Assign - save: %v", ErrPersistence, err)
	}

	s.logger.Info("Assign: %s set by user_id=%s (dishes=%d, drinks=%d, desserts=%d)",
		describe(key), req.UpdatedBy, len(entry.DishIDs), len(entry.DrinkIDs), len(entry.DessertIDs))

	resp := s.render(entry)
	return &resp, nil
}

// Clear удаляет меню ячейки. Очистка пустой ячейки не ошибка.
func (s *Service) Clear(ctx context.Context, venueID, weekday, meal string) error {
	key, err := s.parseKey(venueID, weekday, meal)
	if err != nil {
		s.logger.Warn("Clear: %v", err)
		return err
	}

	if err := s.storage.DeleteMenu(ctx, key); err != nil {
		s.logger.Error("Clear: failed to clear %s: %v", describe(key), err)
		return fmt.Errorf("%w: Clear - delete: %v", ErrPersistence, err)
	}

	s.logger.Info("Clear: %s cleared", describe(key))
	return nil
}

func (s *Service) checkVenue(venueID string) error {
	if strings.TrimSpace(venueID) == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	if _, err := s.catalog.GetVenue(venueID); err != nil {
		if errors.Is(err, catalogService.ErrVenueNotFound) {
			return fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
		}
		return fmt.Errorf("%w: venue lookup: %v", ErrPersistence, err)
	}
	return nil
}

func (s *Service) parseKey(venueID, weekday, meal string) (domain.MenuKey, error) {
	if err := s.checkVenue(venueID); err != nil {
		return domain.MenuKey{}, err
	}

	day, err := domain.ParseWeekday(weekday)
	if err != nil {
		return domain.MenuKey{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	m, err := domain.ParseMeal(meal)
	if err != nil {
		return domain.MenuKey{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return domain.MenuKey{VenueID: venueID, Weekday: day, Meal: m}, nil
}

// resolveIDs проверяет позиции одного типа и убирает повторы, сохраняя порядок
func (s *Service) resolveIDs(kind domain.ConsumableType, ids []string) ([]string, error) {
	result := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			return nil, fmt.Errorf("%w: empty %s id", ErrInvalidInput, kind)
		}
		if _, ok := seen[id]; ok {
			continue
		}

		consumable, err := s.catalog.GetConsumable(id)
		if err != nil {
			if errors.Is(err, catalogService.ErrConsumableNotFound) {
				s.logger.Warn("Assign: consumable id=%s not found", id)
				return nil, fmt.Errorf("%w: %s", ErrConsumableNotFound, id)
			}
			return nil, fmt.Errorf("%w: consumable lookup: %v", ErrPersistence, err)
		}
		if consumable.Type != kind {
			s.logger.Warn("Assign: consumable id=%s is %s, not %s", id, consumable.Type, kind)
			return nil, fmt.Errorf("%w: consumable %s is %s, not %s", ErrInvalidInput, id, consumable.Type, kind)
		}

		seen[id] = struct{}{}
		result = append(result, id)
	}

	if len(result) > domain.MaxMenuItemsPerKind {
		return nil, fmt.Errorf("%w: at most %d %s items per menu", ErrInvalidInput, domain.MaxMenuItemsPerKind, kind)
	}
	return result, nil
}

func (s *Service) render(e domain.MenuEntry) models.MenuEntryResponse {
	resp := models.MenuEntryResponse{
		Weekday:   domain.WeekdayName(e.Weekday),
		Meal:      string(e.Meal),
		UpdatedBy: e.UpdatedBy,
	}
	if !e.UpdatedAt.IsZero() {
		at := e.UpdatedAt
		resp.UpdatedAt = &at
	}

	for _, kind := range menuKinds {
		items := make([]models.MenuItemResponse, 0, len(e.IDs(kind)))
		for _, id := range e.IDs(kind) {
			consumable, err := s.catalog.GetConsumable(id)
			if err != nil {
				s.logger.Warn("render: %s references missing consumable id=%s", describe(e.MenuKey), id)
				continue
			}
			items = append(items, models.FromDomainConsumable(*consumable))
			resp.Price += consumable.Price
		}

		switch kind {
		case domain.ConsumableDish:
			resp.Dishes = items
		case domain.ConsumableDrink:
			resp.Drinks = items
		case domain.ConsumableDessert:
			resp.Desserts = items
		}
	}

	return resp
}

func describe(k domain.MenuKey) string {
	return fmt.Sprintf("venue_id=%s %s/%s", k.VenueID, domain.WeekdayName(k.Weekday), k.Meal)
}
