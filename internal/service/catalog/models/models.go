package models

import "github.com/m04kA/SMC-CanteenService/internal/domain"

// Request модели

// ItemRequest выбранная позиция меню
type ItemRequest struct {
	ConsumableID string `json:"consumableId"`
	Quantity     int    `json:"quantity"`
}

// Response модели

// VenueResponse площадка
type VenueResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

// VenueListResponse список площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// ConsumableResponse позиция меню
type ConsumableResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	Category    *string `json:"category,omitempty"`
}

// ConsumableListResponse список позиций меню
type ConsumableListResponse struct {
	Consumables []ConsumableResponse `json:"consumables"`
}

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v domain.Venue) VenueResponse {
	return VenueResponse{
		ID:       v.ID,
		Name:     v.Name,
		Address:  v.Address,
		Capacity: v.Capacity,
	}
}

// FromDomainConsumable конвертирует domain модель в DTO
func FromDomainConsumable(c domain.Consumable) ConsumableResponse {
	return ConsumableResponse{
		ID:          c.ID,
		Name:        c.Name,
		Type:        string(c.Type),
		Description: c.Description,
		Price:       c.Price,
		Available:   c.Available,
		Category:    c.Category,
	}
}
