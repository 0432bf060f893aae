package reservations

import (
	"sort"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// sortForListing упорядочивает бронирования для списков:
// статус (ACTIVE, FINALIZED, CANCELLED), дата по убыванию,
// время создания по убыванию, ID по возрастанию
func sortForListing(list []*domain.Reservation) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]

		if ra, rb := a.Status.Rank(), b.Status.Rank(); ra != rb {
			return ra < rb
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
