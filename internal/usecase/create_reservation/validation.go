package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.Items) > domain.MaxItemsPerReservation {
		return fmt.Errorf("%w: at most %d items allowed", ErrInvalidInput, domain.MaxItemsPerReservation)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования.
// Бронировать можно с завтрашнего дня, сегодня только при sameDay.
func validateDate(reservationDate, now time.Time, advanceDays int, sameDay bool) error {
	day := domain.DateOnly(reservationDate)
	today := domain.DateOnly(now)

	// Проверяем, что дата не в прошлом
	if day.Before(today) {
		return ErrInvalidDate
	}
	if day.Equal(today) && !sameDay {
		return fmt.Errorf("%w: same-day booking is disabled, earliest date is %s",
			ErrInvalidDate, today.AddDate(0, 0, 1).Format(domain.DateFormat))
	}

	// Если advanceDays = 0, нет ограничений на дату
	if advanceDays == 0 {
		return nil
	}

	if day.After(today.AddDate(0, 0, advanceDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceDays)
	}

	return nil
}

// validateStartTime проверяет, что сегодняшний слот ещё не начался
func validateStartTime(reservationDate time.Time, startTime types.TimeString, now time.Time) error {
	if !domain.DateOnly(reservationDate).Equal(domain.DateOnly(now)) {
		return nil
	}

	if !startTime.IsAfter(types.NewTimeString(now)) {
		return fmt.Errorf("%w: slot %s has already started", ErrTooLateToBook, startTime)
	}

	return nil
}
