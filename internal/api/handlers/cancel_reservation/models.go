package cancel_reservation

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// Reason возвращает причину отмены или пустую строку
func (r *CancelReservationRequest) Reason() string {
	if r.CancellationReason == nil {
		return ""
	}
	return *r.CancellationReason
}
