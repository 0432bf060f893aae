package domain

// Venue площадка (столовая) с фиксированной вместимостью
type Venue struct {
	ID       string
	Name     string
	Address  string
	Capacity int
}

// ConsumableType тип позиции меню
type ConsumableType string

const (
	ConsumableDish    ConsumableType = "dish"
	ConsumableDrink   ConsumableType = "drink"
	ConsumableDessert ConsumableType = "dessert"
)

// Consumable позиция каталога
type Consumable struct {
	ID          string
	Name        string
	Type        ConsumableType
	Description string
	Price       float64
	Available   bool
	Category    *string
}
