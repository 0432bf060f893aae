package update_reservation

import (
	"github.com/m04kA/SMC-CanteenService/internal/domain"
	catalogModels "github.com/m04kA/SMC-CanteenService/internal/service/catalog/models"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
)

// UpdateReservationRequest HTTP request model. Отсутствующее поле не меняется.
type UpdateReservationRequest struct {
	Status             *string                      `json:"status,omitempty"`
	PaymentMethod      *string                      `json:"paymentMethod,omitempty"`
	CancellationReason *string                      `json:"cancellationReason,omitempty"`
	Items              *[]catalogModels.ItemRequest `json:"items,omitempty"`
}

// ToPatch конвертирует запрос в patch сервиса без позиций меню
func (r *UpdateReservationRequest) ToPatch() (models.Patch, error) {
	var patch models.Patch

	if r.Status != nil {
		status, err := models.ToDomainStatus(*r.Status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}

	if r.PaymentMethod != nil {
		method, err := models.ToDomainPaymentMethod(*r.PaymentMethod)
		if err != nil {
			return patch, err
		}
		patch.PaymentMethod = &method
	}

	patch.CancellationReason = r.CancellationReason
	return patch, nil
}

// targetStatus статус после применения запроса
func targetStatus(patch models.Patch, current domain.ReservationStatus) domain.ReservationStatus {
	if patch.Status != nil {
		return *patch.Status
	}
	return current
}
