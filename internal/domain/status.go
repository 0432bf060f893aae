package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTransition возвращается при недопустимой смене статуса
var ErrInvalidTransition = errors.New("invalid reservation status transition")

// ErrUnknownStatus возвращается, когда строка не входит в перечисление статусов
var ErrUnknownStatus = errors.New("unknown reservation status")

// Statuses полный список статусов в порядке отображения
var Statuses = []ReservationStatus{
	StatusActive,
	StatusFinalized,
	StatusCancelled,
}

// Rank порядок сортировки: активные, затем завершённые, затем отменённые
func (s ReservationStatus) Rank() int {
	switch s {
	case StatusActive:
		return 0
	case StatusFinalized:
		return 1
	case StatusCancelled:
		return 2
	default:
		return len(Statuses)
	}
}

// IsValid returns true for members of the closed enumeration
func (s ReservationStatus) IsValid() bool {
	return s.Rank() < len(Statuses)
}

// ParseStatus парсит статус без учёта регистра
func ParseStatus(raw string) (ReservationStatus, error) {
	s := ReservationStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// Transition describes one allowed status change and its side effect on occupancy
type Transition struct {
	From ReservationStatus
	To   ReservationStatus
	// ReleasesSlot is true when the reservation stops counting against its slot
	ReleasesSlot bool
}

// ResolveTransition проверяет переход from -> to.
// Возвращает nil, nil для перехода в тот же статус (no-op).
func ResolveTransition(from, to ReservationStatus) (*Transition, error) {
	if !to.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if from == to {
		return nil, nil
	}
	if from != StatusActive {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	// Из ACTIVE допустимы только терминальные статусы, оба освобождают слот
	return &Transition{From: from, To: to, ReleasesSlot: true}, nil
}
