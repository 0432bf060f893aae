package create_reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	catalogModels "github.com/m04kA/SMC-CanteenService/internal/service/catalog/models"
	createReservation "github.com/m04kA/SMC-CanteenService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-CanteenService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	VenueID   string                      `json:"venueId"`
	Date      string                      `json:"date"`      // "2025-10-23"
	Meal      string                      `json:"meal"`      // "lunch"
	StartTime string                      `json:"startTime"` // "12:00"
	Items     []catalogModels.ItemRequest `json:"items,omitempty"`
}

// errInvalidDate и errInvalidTime различают ошибки разбора для ответа клиенту
var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createReservation.Request{
		UserID:    userID,
		VenueID:   r.VenueID,
		Date:      date,
		Meal:      r.Meal,
		StartTime: startTime,
		Items:     r.Items,
	}, nil
}
