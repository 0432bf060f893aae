package models

import (
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// Request модели

// AssignRequest назначение меню на день недели и приём пищи.
// Пустые списки во всех трёх типах очищают ячейку.
type AssignRequest struct {
	VenueID    string
	Weekday    string // "monday" или "lunes"
	Meal       string // "lunch" или "almuerzo"
	DishIDs    []string
	DrinkIDs   []string
	DessertIDs []string
	UpdatedBy  string
}

// Response модели

// MenuItemResponse позиция меню с текущей ценой каталога
type MenuItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// MenuEntryResponse меню одной ячейки плана
type MenuEntryResponse struct {
	Weekday   string             `json:"weekday"`
	Meal      string             `json:"meal"`
	Dishes    []MenuItemResponse `json:"dishes"`
	Drinks    []MenuItemResponse `json:"drinks"`
	Desserts  []MenuItemResponse `json:"desserts"`
	Price     float64            `json:"price"` // сумма текущих цен позиций
	UpdatedBy string             `json:"updatedBy,omitempty"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
}

// WeeklyMenuResponse недельный план площадки
type WeeklyMenuResponse struct {
	VenueID string              `json:"venueId"`
	Entries []MenuEntryResponse `json:"entries"`
}

// FromDomainConsumable конвертирует позицию каталога в DTO
func FromDomainConsumable(c domain.Consumable) MenuItemResponse {
	return MenuItemResponse{
		ID:        c.ID,
		Name:      c.Name,
		Price:     c.Price,
		Available: c.Available,
	}
}
