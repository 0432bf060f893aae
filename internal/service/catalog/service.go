package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CanteenService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CanteenService/internal/service/catalog/models"
)

// Service сервис справочных данных: площадки, меню, расчёт стоимости
type Service struct {
	repo   Repository
	fee    float64
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога.
// fee начисляется за бронирование без позиций.
func NewService(repo Repository, fee float64, logger Logger) *Service {
	return &Service{
		repo:   repo,
		fee:    fee,
		logger: logger,
	}
}

// GetVenue получает площадку по ID
func (s *Service) GetVenue(id string) (*domain.Venue, error) {
	venue, err := s.repo.GetVenue(id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("%w: GetVenue - repository error: %v", ErrInternal, err)
	}
	return venue, nil
}

// GetConsumable получает позицию меню по ID
func (s *Service) GetConsumable(id string) (*domain.Consumable, error) {
	consumable, err := s.repo.GetConsumable(id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrConsumableNotFound) {
			return nil, ErrConsumableNotFound
		}
		return nil, fmt.Errorf("%w: GetConsumable - repository error: %v", ErrInternal, err)
	}
	return consumable, nil
}

// ListVenues возвращает все площадки
func (s *Service) ListVenues() *models.VenueListResponse {
	venues := s.repo.ListVenues()

	resp := &models.VenueListResponse{Venues: make([]models.VenueResponse, 0, len(venues))}
	for _, v := range venues {
		resp.Venues = append(resp.Venues, models.FromDomainVenue(v))
	}
	return resp
}

// ListConsumables возвращает меню, опционально только одного типа ("dish", "drink", "dessert")
func (s *Service) ListConsumables(kind string) (*models.ConsumableListResponse, error) {
	var filter *domain.ConsumableType
	if kind = strings.ToLower(strings.TrimSpace(kind)); kind != "" {
		t := domain.ConsumableType(kind)
		switch t {
		case domain.ConsumableDish, domain.ConsumableDrink, domain.ConsumableDessert:
			filter = &t
		default:
			s.logger.Warn("ListConsumables: unknown type=%s", kind)
			return nil, fmt.Errorf("%w: unknown consumable type %q", ErrInvalidInput, kind)
		}
	}

	items := s.repo.ListConsumables(filter)

	resp := &models.ConsumableListResponse{Consumables: make([]models.ConsumableResponse, 0, len(items))}
	for _, c := range items {
		resp.Consumables = append(resp.Consumables, models.FromDomainConsumable(c))
	}
	return resp, nil
}

// PriceItems сверяет выбранные позиции с каталогом и считает итог.
// Цена берётся из каталога, а не от клиента. Без позиций итог равен сбору за бронирование.
// Одинаковые позиции объединяются в одну строку.
func (s *Service) PriceItems(requests []models.ItemRequest) ([]domain.LineItem, float64, error) {
	if len(requests) > domain.MaxItemsPerReservation {
		return nil, 0, fmt.Errorf("%w: at most %d items allowed", ErrInvalidInput, domain.MaxItemsPerReservation)
	}

	items := make([]domain.LineItem, 0, len(requests))
	index := make(map[string]int, len(requests))

	for _, req := range requests {
		if req.Quantity <= 0 || req.Quantity > domain.MaxItemQuantity {
			return nil, 0, fmt.Errorf("%w: quantity of %s must be between 1 and %d",
				ErrInvalidInput, req.ConsumableID, domain.MaxItemQuantity)
		}

		consumable, err := s.repo.GetConsumable(req.ConsumableID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrConsumableNotFound) {
				s.logger.Warn("PriceItems: consumable id=%s not found", req.ConsumableID)
				return nil, 0, fmt.Errorf("%w: %s", ErrConsumableNotFound, req.ConsumableID)
			}
			return nil, 0, fmt.Errorf("%w: PriceItems - repository error: %v", ErrInternal, err)
		}
		if !consumable.Available {
			s.logger.Warn("PriceItems: consumable id=%s is not available", req.ConsumableID)
			return nil, 0, fmt.Errorf("%w: %s", ErrConsumableUnavailable, req.ConsumableID)
		}

		if i, ok := index[consumable.ID]; ok {
			items[i].Quantity += req.Quantity
			if items[i].Quantity > domain.MaxItemQuantity {
				return nil, 0, fmt.Errorf("%w: quantity of %s must be between 1 and %d",
					ErrInvalidInput, consumable.ID, domain.MaxItemQuantity)
			}
			continue
		}

		index[consumable.ID] = len(items)
		items = append(items, domain.LineItem{
			ConsumableID: consumable.ID,
			Name:         consumable.Name,
			Quantity:     req.Quantity,
			UnitPrice:    consumable.Price,
		})
	}

	if len(items) == 0 {
		return items, s.fee, nil
	}

	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	return items, total, nil
}
