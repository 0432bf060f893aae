package menu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/pkg/dbmetrics"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestBuildUpsert(t *testing.T) {
	query, args, err := buildUpsert(domain.MenuEntry{
		MenuKey: domain.MenuKey{VenueID: "1", Weekday: time.Tuesday, Meal: domain.MealLunch},
		DishIDs: []string{"1", "2"},
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO weekly_menus (venue_id,weekday,meal,dish_ids,drink_ids,dessert_ids,updated_by,updated_at)")
	assert.Contains(t, query, "ON CONFLICT (venue_id, weekday, meal) DO UPDATE SET")
	require.Len(t, args, len(menuColumns))
	assert.Equal(t, 2, args[1])
	assert.Equal(t, "lunch", args[2])
}

func TestRepository_ListMenu(t *testing.T) {
	ctx := context.Background()
	updated := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

	t.Run("scans arrays and nullable author", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("^SELECT venue_id, weekday, meal, .* FROM weekly_menus WHERE venue_id = \\$1 ORDER BY weekday, meal$").
			WithArgs("1").
			WillReturnRows(sqlmock.NewRows(menuColumns).
				AddRow("1", int64(1), "lunch", []byte(`{1,2}`), []byte(`{6}`), []byte(`{}`), "chef-1", updated).
				AddRow("1", int64(5), "dinner", "{3}", "{}", "{10}", nil, nil))

		list, err := repo.ListMenu(ctx, "1")
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
		require.Len(t, list, 2)

		assert.Equal(t, time.Monday, list[0].Weekday)
		assert.Equal(t, domain.MealLunch, list[0].Meal)
		assert.Equal(t, []string{"1", "2"}, list[0].DishIDs)
		assert.Equal(t, []string{"6"}, list[0].DrinkIDs)
		assert.Empty(t, list[0].DessertIDs)
		assert.Equal(t, "chef-1", list[0].UpdatedBy)
		assert.True(t, updated.Equal(list[0].UpdatedAt))

		assert.Equal(t, time.Friday, list[1].Weekday)
		assert.Equal(t, []string{"10"}, list[1].DessertIDs)
		assert.Empty(t, list[1].UpdatedBy)
		assert.True(t, list[1].UpdatedAt.IsZero())
	})

	t.Run("weekday out of range", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("FROM weekly_menus").
			WillReturnRows(sqlmock.NewRows(menuColumns).
				AddRow("1", int64(9), "lunch", "{}", "{}", "{}", nil, nil))

		_, err := repo.ListMenu(ctx, "1")
		assert.ErrorIs(t, err, ErrScanRow)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("FROM weekly_menus").WillReturnError(errors.New("connection reset"))

		_, err := repo.ListMenu(ctx, "1")
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestRepository_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	key := domain.MenuKey{VenueID: "1", Weekday: time.Wednesday, Meal: domain.MealSnack}
	updated := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

	t.Run("save writes arrays, nil as empty", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("^INSERT INTO weekly_menus ").
			WithArgs("1", 3, "snack", `{"7","8"}`, "{}", `{"11"}`, "chef-1", updated).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveMenu(ctx, domain.MenuEntry{
			MenuKey:    key,
			DishIDs:    []string{"7", "8"},
			DessertIDs: []string{"11"},
			UpdatedBy:  "chef-1",
			UpdatedAt:  updated,
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete by cell key", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("^DELETE FROM weekly_menus WHERE \\(?meal = \\$1 AND venue_id = \\$2 AND weekday = \\$3\\)?$").
			WithArgs("snack", "1", 3).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.DeleteMenu(ctx, key))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec failure", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("^DELETE FROM weekly_menus").WillReturnError(errors.New("read-only"))

		assert.ErrorIs(t, repo.DeleteMenu(ctx, key), ErrExecQuery)
	})
}
