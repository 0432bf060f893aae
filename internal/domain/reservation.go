package domain

import (
	"time"

	"github.com/m04kA/SMC-CanteenService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "ACTIVE"
	StatusFinalized ReservationStatus = "FINALIZED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// PaymentMethod способ оплаты, который фиксирует кассир
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// LineItem позиция заказа внутри бронирования
type LineItem struct {
	ConsumableID string
	Name         string
	Quantity     int
	UnitPrice    float64
}

// Subtotal возвращает стоимость позиции
func (i LineItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Reservation represents a seat reservation at a canteen venue
type Reservation struct {
	ID      string
	UserID  string
	VenueID string

	// SlotID ссылка на часовой слот. Старые записи вместо неё хранят ShiftID
	// (грубый "turno" без точного часа) и не занимают места в слотах.
	SlotID    *string
	ShiftID   *string
	Meal      *Meal
	SlotStart *types.TimeString
	SlotEnd   *types.TimeString

	Date          time.Time
	Status        ReservationStatus
	Items         []LineItem
	Total         float64
	PaymentMethod *PaymentMethod

	CancellationReason *string
	CancelledAt        *time.Time
	FinalizedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still holds its slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsTerminal returns true if no further transitions are possible
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusFinalized || r.Status == StatusCancelled
}

// HoldsSlot returns true if the reservation currently counts against slot occupancy
func (r *Reservation) HoldsSlot() bool {
	return r.IsActive() && r.SlotID != nil && *r.SlotID != ""
}

// ItemsTotal сумма по всем позициям
func (r *Reservation) ItemsTotal() float64 {
	total := 0.0
	for _, item := range r.Items {
		total += item.Subtotal()
	}
	return total
}

// Clone возвращает глубокую копию бронирования
func (r *Reservation) Clone() *Reservation {
	if r == nil {
		return nil
	}
	c := *r
	if r.Items != nil {
		c.Items = make([]LineItem, len(r.Items))
		copy(c.Items, r.Items)
	}
	c.SlotID = cloneValue(r.SlotID)
	c.ShiftID = cloneValue(r.ShiftID)
	c.Meal = cloneValue(r.Meal)
	c.SlotStart = cloneValue(r.SlotStart)
	c.SlotEnd = cloneValue(r.SlotEnd)
	c.PaymentMethod = cloneValue(r.PaymentMethod)
	c.CancellationReason = cloneValue(r.CancellationReason)
	c.CancelledAt = cloneValue(r.CancelledAt)
	c.FinalizedAt = cloneValue(r.FinalizedAt)
	return &c
}

func cloneValue[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// VenueReservationsFilter фильтр для получения бронирований площадки
type VenueReservationsFilter struct {
	VenueID string             // Обязательный параметр
	Date    *time.Time         // Конкретная дата (опционально)
	Status  *ReservationStatus // Фильтр по статусу (опционально)
}
