package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanteenService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"user_id",
	"venue_id",
	"slot_id",
	"shift_id",
	"meal",
	"slot_start",
	"slot_end",
	"reservation_date",
	"status",
	"total",
	"payment_method",
	"cancellation_reason",
	"cancelled_at",
	"finalized_at",
	"created_at",
	"updated_at",
}

// Колонки, которые перезаписываются при повторном сохранении
var upsertSuffix = "ON CONFLICT (id) DO UPDATE SET " +
	"slot_id = EXCLUDED.slot_id, " +
	"shift_id = EXCLUDED.shift_id, " +
	"meal = EXCLUDED.meal, " +
	"slot_start = EXCLUDED.slot_start, " +
	"slot_end = EXCLUDED.slot_end, " +
	"status = EXCLUDED.status, " +
	"total = EXCLUDED.total, " +
	"payment_method = EXCLUDED.payment_method, " +
	"cancellation_reason = EXCLUDED.cancellation_reason, " +
	"cancelled_at = EXCLUDED.cancelled_at, " +
	"finalized_at = EXCLUDED.finalized_at, " +
	"updated_at = EXCLUDED.updated_at"

// Repository хранилище бронирований в PostgreSQL
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{db: db, txManager: txManager}
}

// LoadAll читает все бронирования вместе с позициями.
// Вызывается один раз при старте, до восстановления журнала занятости.
func (r *Repository) LoadAll(ctx context.Context) ([]*domain.Reservation, error) {
	var result []*domain.Reservation

	err := r.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		list, err := r.selectReservations(txCtx)
		if err != nil {
			return err
		}

		byID := make(map[string]*domain.Reservation, len(list))
		for _, res := range list {
			byID[res.ID] = res
		}

		if err := r.attachItems(txCtx, byID); err != nil {
			return err
		}

		result = list
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Save сохраняет бронирование целиком: строку и позиции в одной транзакции
func (r *Repository) Save(ctx context.Context, res *domain.Reservation) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		return r.save(txCtx, res)
	})
}

// SaveAll сохраняет набор бронирований в одной транзакции
func (r *Repository) SaveAll(ctx context.Context, list []*domain.Reservation) error {
	if len(list) == 0 {
		return nil
	}

	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, res := range list {
			if err := r.save(txCtx, res); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) save(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsert(res)
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert id=%s: %v", ErrExecQuery, res.ID, err)
	}

	// Позиции заменяются целиком
	query, args, err = psqlbuilder.Delete("reservation_items").
		Where(squirrel.Eq{"reservation_id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build delete items query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - delete items id=%s: %v", ErrExecQuery, res.ID, err)
	}

	if len(res.Items) == 0 {
		return nil
	}

	query, args, err = buildItemsInsert(res)
	if err != nil {
		return fmt.Errorf("%w: Save - build insert items query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - insert items id=%s: %v", ErrExecQuery, res.ID, err)
	}

	return nil
}

func buildUpsert(res *domain.Reservation) (string, []interface{}, error) {
	return psqlbuilder.Insert("reservations").
		Columns(reservationColumns...).
		Values(
			res.ID,
			res.UserID,
			res.VenueID,
			res.SlotID,
			res.ShiftID,
			res.Meal,
			res.SlotStart,
			res.SlotEnd,
			res.Date,
			res.Status,
			res.Total,
			res.PaymentMethod,
			res.CancellationReason,
			res.CancelledAt,
			res.FinalizedAt,
			res.CreatedAt,
			res.UpdatedAt,
		).
		Suffix(upsertSuffix).
		ToSql()
}

func buildItemsInsert(res *domain.Reservation) (string, []interface{}, error) {
	builder := psqlbuilder.Insert("reservation_items").
		Columns("reservation_id", "position", "consumable_id", "name", "quantity", "unit_price")

	for i, item := range res.Items {
		builder = builder.Values(res.ID, i, item.ConsumableID, item.Name, item.Quantity, item.UnitPrice)
	}

	return builder.ToSql()
}

func (r *Repository) selectReservations(ctx context.Context) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	list := make([]*domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.VenueID,
			&res.SlotID,
			&res.ShiftID,
			&res.Meal,
			&res.SlotStart,
			&res.SlotEnd,
			&res.Date,
			&res.Status,
			&res.Total,
			&res.PaymentMethod,
			&res.CancellationReason,
			&res.CancelledAt,
			&res.FinalizedAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: LoadAll - scan reservation: %v", ErrScanRow, err)
		}

		res.Date = domain.DateOnly(res.Date)
		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time
		list = append(list, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadAll - rows iteration: %v", ErrScanRow, err)
	}

	return list, nil
}

func (r *Repository) attachItems(ctx context.Context, byID map[string]*domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("reservation_id", "consumable_id", "name", "quantity", "unit_price").
		From("reservation_items").
		OrderBy("reservation_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LoadAll - build items query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: LoadAll - execute items select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var reservationID string
		var item domain.LineItem

		if err := rows.Scan(&reservationID, &item.ConsumableID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("%w: LoadAll - scan item: %v", ErrScanRow, err)
		}

		if res, ok := byID[reservationID]; ok {
			res.Items = append(res.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: LoadAll - items iteration: %v", ErrScanRow, err)
	}

	return nil
}
