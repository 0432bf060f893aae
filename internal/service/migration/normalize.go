// Package migration приводит сохранённое состояние старых версий к текущей схеме.
package migration

import (
	"strings"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// Report итоги нормализации, используются только для диагностики
type Report struct {
	Total         int
	StatusCoerced int
	MealsRenamed  int
	// LegacyStatuses количество записей по каждому нераспознанному значению статуса
	LegacyStatuses map[string]int
	// ChangedIDs идентификаторы изменённых записей, их нужно сохранить заново
	ChangedIDs []string
}

// Changed returns true if at least one record was rewritten
func (r Report) Changed() bool {
	return len(r.ChangedIDs) > 0
}

// Normalize приводит статусы к перечислению ACTIVE/FINALIZED/CANCELLED.
// Любое другое значение, включая старые "pendiente"/"confirmada"/"pagada",
// превращается в ACTIVE: неоднозначное бронирование остаётся требующим действия.
// Входной срез не изменяется. Повторный запуск на результате ничего не меняет.
func Normalize(reservations []*domain.Reservation) ([]*domain.Reservation, Report) {
	report := Report{
		Total:          len(reservations),
		LegacyStatuses: make(map[string]int),
		ChangedIDs:     make([]string, 0),
	}

	result := make([]*domain.Reservation, 0, len(reservations))

	for _, original := range reservations {
		if original == nil {
			continue
		}

		r := original.Clone()
		changed := false

		status, recognized := normalizeStatus(r.Status)
		if !recognized {
			report.StatusCoerced++
			report.LegacyStatuses[string(r.Status)]++
		}
		if status != r.Status {
			r.Status = status
			changed = true
		}

		if r.Meal != nil {
			if meal, err := domain.ParseMeal(string(*r.Meal)); err == nil && meal != *r.Meal {
				r.Meal = &meal
				report.MealsRenamed++
				changed = true
			}
		}

		if changed {
			report.ChangedIDs = append(report.ChangedIDs, r.ID)
		}
		result = append(result, r)
	}

	return result, report
}

// normalizeStatus переводит статус в верхний регистр и проверяет по перечислению.
// Второе значение false, если исходный статус не распознан.
func normalizeStatus(status domain.ReservationStatus) (domain.ReservationStatus, bool) {
	upper := domain.ReservationStatus(strings.ToUpper(strings.TrimSpace(string(status))))
	if upper.IsValid() {
		return upper, true
	}
	return domain.StatusActive, false
}
