package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CanteenService/pkg/types"
)

// Slot represents a one-hour bookable window within a meal at a venue on a date
type Slot struct {
	ID            string
	VenueID       string
	Date          time.Time
	Meal          Meal
	Start         types.TimeString
	End           types.TimeString
	Capacity      int
	ReservedCount int // Derived from the occupancy ledger, zero when generated
}

// SlotID строит детерминированный идентификатор слота: "2025-10-23_V1_07:00-08:00"
func SlotID(date time.Time, venueID string, start, end types.TimeString) string {
	return fmt.Sprintf("%s_%s_%s-%s", date.Format(DateFormat), venueID, start, end)
}

// AvailableSpots количество свободных мест
func (s *Slot) AvailableSpots() int {
	available := s.Capacity - s.ReservedCount
	if available < 0 {
		return 0
	}
	return available
}

// IsFull returns true if the slot has no available spots
func (s *Slot) IsFull() bool {
	return s.AvailableSpots() <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *Slot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Capacity-s.AvailableSpots()) / float64(s.Capacity) * 100
}

// DateOnly отбрасывает время суток, сохраняя календарную дату (UTC)
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
