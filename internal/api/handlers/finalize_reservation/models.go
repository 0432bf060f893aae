package finalize_reservation

import (
	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
)

// FinalizeReservationRequest HTTP request model
type FinalizeReservationRequest struct {
	PaymentMethod *string `json:"paymentMethod,omitempty"` // cash | card | transfer
}

// ToPaymentMethod конвертирует способ оплаты, nil если не передан
func (r *FinalizeReservationRequest) ToPaymentMethod() (*domain.PaymentMethod, error) {
	if r.PaymentMethod == nil {
		return nil, nil
	}
	method, err := models.ToDomainPaymentMethod(*r.PaymentMethod)
	if err != nil {
		return nil, err
	}
	return &method, nil
}
