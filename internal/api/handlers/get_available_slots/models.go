package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CanteenService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	VenueID string          `json:"venueId"`
	Date    string          `json:"date"`
	Slots   []AvailableSlot `json:"slots"`
}

// AvailableSlot часовой слот с занятостью
type AvailableSlot struct {
	ID             string `json:"id"`
	Meal           string `json:"meal"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Capacity       int    `json:"capacity"`
	ReservedCount  int    `json:"reservedCount"`
	AvailableSpots int    `json:"availableSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:             slot.ID,
			Meal:           string(slot.Meal),
			StartTime:      slot.Start.String(),
			EndTime:        slot.End.String(),
			Capacity:       slot.Capacity,
			ReservedCount:  slot.ReservedCount,
			AvailableSpots: slot.AvailableSpots,
		}
	}

	return &AvailableSlotsResponse{
		VenueID: resp.VenueID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(venueID, dateStr, meal string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		VenueID: venueID,
		Date:    date,
		Meal:    meal,
	}, nil
}
