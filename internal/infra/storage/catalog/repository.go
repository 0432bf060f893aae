package catalog

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// file структура TOML-файла каталога
type file struct {
	Venues      []venueRecord      `toml:"venues"`
	Consumables []consumableRecord `toml:"consumables"`
}

type venueRecord struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Address  string `toml:"address"`
	Capacity int    `toml:"capacity"`
}

type consumableRecord struct {
	ID          string  `toml:"id"`
	Name        string  `toml:"name"`
	Type        string  `toml:"type"`
	Description string  `toml:"description"`
	Price       float64 `toml:"price"`
	Available   bool    `toml:"available"`
	Category    string  `toml:"category"`
}

// Repository справочные данные: площадки и позиции меню. Только чтение.
type Repository struct {
	venues      map[string]domain.Venue
	consumables map[string]domain.Consumable
	venueOrder  []string
	itemOrder   []string
}

// Load читает каталог из TOML-файла
func Load(path string) (*Repository, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%w: Load - %s: %v", ErrDecode, path, err)
	}
	return build(f)
}

// Parse читает каталог из TOML-строки
func Parse(data string) (*Repository, error) {
	var f file
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("%w: Parse: %v", ErrDecode, err)
	}
	return build(f)
}

// NewRepository создает репозиторий из готовых данных (используется в тестах и dev-режиме)
func NewRepository(venues []domain.Venue, consumables []domain.Consumable) (*Repository, error) {
	var f file
	for _, v := range venues {
		f.Venues = append(f.Venues, venueRecord{ID: v.ID, Name: v.Name, Address: v.Address, Capacity: v.Capacity})
	}
	for _, c := range consumables {
		record := consumableRecord{
			ID:          c.ID,
			Name:        c.Name,
			Type:        string(c.Type),
			Description: c.Description,
			Price:       c.Price,
			Available:   c.Available,
		}
		if c.Category != nil {
			record.Category = *c.Category
		}
		f.Consumables = append(f.Consumables, record)
	}
	return build(f)
}

func build(f file) (*Repository, error) {
	r := &Repository{
		venues:      make(map[string]domain.Venue, len(f.Venues)),
		consumables: make(map[string]domain.Consumable, len(f.Consumables)),
	}

	for _, v := range f.Venues {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: venue without id", ErrInvalidCatalog)
		}
		if _, dup := r.venues[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate venue id=%s", ErrInvalidCatalog, v.ID)
		}
		if v.Capacity <= 0 {
			return nil, fmt.Errorf("%w: venue id=%s capacity must be positive", ErrInvalidCatalog, v.ID)
		}
		r.venues[v.ID] = domain.Venue{ID: v.ID, Name: v.Name, Address: v.Address, Capacity: v.Capacity}
		r.venueOrder = append(r.venueOrder, v.ID)
	}

	for _, c := range f.Consumables {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: consumable without id", ErrInvalidCatalog)
		}
		if _, dup := r.consumables[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate consumable id=%s", ErrInvalidCatalog, c.ID)
		}
		if c.Price < 0 {
			return nil, fmt.Errorf("%w: consumable id=%s price must not be negative", ErrInvalidCatalog, c.ID)
		}
		kind := domain.ConsumableType(c.Type)
		switch kind {
		case domain.ConsumableDish, domain.ConsumableDrink, domain.ConsumableDessert:
		default:
			return nil, fmt.Errorf("%w: consumable id=%s unknown type %q", ErrInvalidCatalog, c.ID, c.Type)
		}

		item := domain.Consumable{
			ID:          c.ID,
			Name:        c.Name,
			Type:        kind,
			Description: c.Description,
			Price:       c.Price,
			Available:   c.Available,
		}
		if c.Category != "" {
			category := c.Category
			item.Category = &category
		}
		r.consumables[c.ID] = item
		r.itemOrder = append(r.itemOrder, c.ID)
	}

	return r, nil
}

// GetVenue получает площадку по ID
func (r *Repository) GetVenue(id string) (*domain.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	return &v, nil
}

// ListVenues возвращает площадки в порядке файла каталога
func (r *Repository) ListVenues() []domain.Venue {
	result := make([]domain.Venue, 0, len(r.venueOrder))
	for _, id := range r.venueOrder {
		result = append(result, r.venues[id])
	}
	return result
}

// GetConsumable получает позицию меню по ID
func (r *Repository) GetConsumable(id string) (*domain.Consumable, error) {
	c, ok := r.consumables[id]
	if !ok {
		return nil, ErrConsumableNotFound
	}
	return &c, nil
}

// ListConsumables возвращает позиции меню, опционально только одного типа.
// Сортировка: тип (блюда, напитки, десерты), затем порядок файла.
func (r *Repository) ListConsumables(kind *domain.ConsumableType) []domain.Consumable {
	result := make([]domain.Consumable, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		c := r.consumables[id]
		if kind != nil && c.Type != *kind {
			continue
		}
		result = append(result, c)
	}

	rank := map[domain.ConsumableType]int{
		domain.ConsumableDish:    0,
		domain.ConsumableDrink:   1,
		domain.ConsumableDessert: 2,
	}
	sort.SliceStable(result, func(i, j int) bool {
		return rank[result[i].Type] < rank[result[j].Type]
	})

	return result
}
