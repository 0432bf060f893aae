package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

func TestMenuStorage(t *testing.T) {
	ctx := context.Background()
	mondayLunch := domain.MenuKey{VenueID: "1", Weekday: time.Monday, Meal: domain.MealLunch}

	t.Run("save replaces the cell and list filters by venue", func(t *testing.T) {
		s := NewMenuStorage()

		entry := domain.MenuEntry{MenuKey: mondayLunch, DishIDs: []string{"1"}}
		require.NoError(t, s.SaveMenu(ctx, entry))
		require.NoError(t, s.SaveMenu(ctx, domain.MenuEntry{MenuKey: mondayLunch, DishIDs: []string{"2"}}))
		require.NoError(t, s.SaveMenu(ctx, domain.MenuEntry{
			MenuKey:  domain.MenuKey{VenueID: "2", Weekday: time.Monday, Meal: domain.MealLunch},
			DrinkIDs: []string{"6"},
		}))

		entry.DishIDs[0] = "mutated"

		list, err := s.ListMenu(ctx, "1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, []string{"2"}, list[0].DishIDs)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := NewMenuStorage()
		require.NoError(t, s.SaveMenu(ctx, domain.MenuEntry{MenuKey: mondayLunch, DishIDs: []string{"1"}}))

		require.NoError(t, s.DeleteMenu(ctx, mondayLunch))
		require.NoError(t, s.DeleteMenu(ctx, mondayLunch))

		list, err := s.ListMenu(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("empty venue rejected", func(t *testing.T) {
		err := NewMenuStorage().SaveMenu(ctx, domain.MenuEntry{DishIDs: []string{"1"}})
		assert.ErrorIs(t, err, ErrEmptyID)
	})
}
