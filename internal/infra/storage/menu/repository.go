// Package menu хранилище недельного меню в PostgreSQL.
// Позиции ячейки хранятся массивами TEXT[] по типам.
package menu

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanteenService/pkg/psqlbuilder"
)

var menuColumns = []string{
	"venue_id",
	"weekday",
	"meal",
	"dish_ids",
	"drink_ids",
	"dessert_ids",
	"updated_by",
	"updated_at",
}

var upsertSuffix = "ON CONFLICT (venue_id, weekday, meal) DO UPDATE SET " +
	"dish_ids = EXCLUDED.dish_ids, " +
	"drink_ids = EXCLUDED.drink_ids, " +
	"dessert_ids = EXCLUDED.dessert_ids, " +
	"updated_by = EXCLUDED.updated_by, " +
	"updated_at = EXCLUDED.updated_at"

// Repository хранилище недельного меню
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListMenu возвращает ячейки площадки
func (r *Repository) ListMenu(ctx context.Context, venueID string) ([]domain.MenuEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(menuColumns...).
		From("weekly_menus").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("weekday", "meal").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListMenu - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMenu - execute select venue_id=%s: %v", ErrExecQuery, venueID, err)
	}
	defer rows.Close()

	result := make([]domain.MenuEntry, 0)
	for rows.Next() {
		var (
			e         domain.MenuEntry
			weekday   int
			updatedBy sql.NullString
			updatedAt sql.NullTime
		)

		err := rows.Scan(
			&e.VenueID,
			&weekday,
			&e.Meal,
			pq.Array(&e.DishIDs),
			pq.Array(&e.DrinkIDs),
			pq.Array(&e.DessertIDs),
			&updatedBy,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListMenu - scan entry: %v", ErrScanRow, err)
		}
		if weekday < int(time.Sunday) || weekday > int(time.Saturday) {
			return nil, fmt.Errorf("%w: ListMenu - weekday %d out of range", ErrScanRow, weekday)
		}

		e.Weekday = time.Weekday(weekday)
		e.UpdatedBy = updatedBy.String
		e.UpdatedAt = updatedAt.Time
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMenu - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// SaveMenu заменяет ячейку целиком
func (r *Repository) SaveMenu(ctx context.Context, entry domain.MenuEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsert(entry)
	if err != nil {
		return fmt.Errorf("%w: SaveMenu - build upsert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveMenu - execute upsert venue_id=%s: %v", ErrExecQuery, entry.VenueID, err)
	}
	return nil
}

// DeleteMenu удаляет ячейку, отсутствующая ячейка не ошибка
func (r *Repository) DeleteMenu(ctx context.Context, key domain.MenuKey) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("weekly_menus").
		Where(squirrel.Eq{
			"venue_id": key.VenueID,
			"weekday":  int(key.Weekday),
			"meal":     string(key.Meal),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteMenu - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteMenu - execute delete venue_id=%s: %v", ErrExecQuery, key.VenueID, err)
	}
	return nil
}

func buildUpsert(e domain.MenuEntry) (string, []interface{}, error) {
	return psqlbuilder.Insert("weekly_menus").
		Columns(menuColumns...).
		Values(
			e.VenueID,
			int(e.Weekday),
			string(e.Meal),
			pq.Array(nonNil(e.DishIDs)),
			pq.Array(nonNil(e.DrinkIDs)),
			pq.Array(nonNil(e.DessertIDs)),
			e.UpdatedBy,
			e.UpdatedAt,
		).
		Suffix(upsertSuffix).
		ToSql()
}

// nil массив в pq превращается в NULL, колонки NOT NULL ждут '{}'
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
