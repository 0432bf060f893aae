package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidPaymentMethod возвращается при некорректном способе оплаты
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Request модели

// Patch явное частичное обновление бронирования.
// nil означает "не менять".
type Patch struct {
	Status             *domain.ReservationStatus
	PaymentMethod      *domain.PaymentMethod
	CancellationReason *string
	// Items заменяет позиции целиком, Total обязателен вместе с Items
	Items *[]domain.LineItem
	Total *float64
}

// IsEmpty returns true if the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.PaymentMethod == nil && p.CancellationReason == nil &&
		p.Items == nil && p.Total == nil
}

// Response модели

// LineItemResponse позиция заказа
type LineItemResponse struct {
	ConsumableID string  `json:"consumableId"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Subtotal     float64 `json:"subtotal"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	VenueID   string  `json:"venueId"`
	SlotID    *string `json:"slotId,omitempty"`
	ShiftID   *string `json:"shiftId,omitempty"` // Старые бронирования без точного часа
	Meal      *string `json:"meal,omitempty"`
	SlotStart *string `json:"slotStart,omitempty"` // "07:00"
	SlotEnd   *string `json:"slotEnd,omitempty"`   // "08:00"
	Date      string  `json:"date"`                // "2025-10-23"
	Status    string  `json:"status"`

	Items         []LineItemResponse `json:"items"`
	Total         float64            `json:"total"`
	PaymentMethod *string            `json:"paymentMethod,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format
	FinalizedAt        *string `json:"finalizedAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		VenueID:            r.VenueID,
		SlotID:             r.SlotID,
		ShiftID:            r.ShiftID,
		Date:               r.Date.Format(domain.DateFormat),
		Status:             string(r.Status),
		Items:              make([]LineItemResponse, len(r.Items)),
		Total:              r.Total,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.Meal != nil {
		meal := string(*r.Meal)
		resp.Meal = &meal
	}
	if r.SlotStart != nil {
		start := r.SlotStart.String()
		resp.SlotStart = &start
	}
	if r.SlotEnd != nil {
		end := r.SlotEnd.String()
		resp.SlotEnd = &end
	}
	if r.PaymentMethod != nil {
		method := string(*r.PaymentMethod)
		resp.PaymentMethod = &method
	}
	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}
	if r.FinalizedAt != nil {
		finalizedStr := r.FinalizedAt.Format(time.RFC3339)
		resp.FinalizedAt = &finalizedStr
	}

	for i, item := range r.Items {
		resp.Items[i] = LineItemResponse{
			ConsumableID: item.ConsumableID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Subtotal:     item.Subtotal(),
		}
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}

	for _, r := range list {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s, err := domain.ParseStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainPaymentMethod конвертирует строку в domain.PaymentMethod с валидацией
func ToDomainPaymentMethod(method string) (domain.PaymentMethod, error) {
	m := domain.PaymentMethod(method)
	switch m {
	case domain.PaymentCash, domain.PaymentCard, domain.PaymentTransfer:
		return m, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}
