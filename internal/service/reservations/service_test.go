package reservations

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CanteenService/pkg/ptr"
	"github.com/m04kA/SMC-CanteenService/pkg/types"
)

type mockStorage struct {
	mu       sync.Mutex
	records  map[string]*domain.Reservation
	loaded   []*domain.Reservation
	saveErr  error
	loadErr  error
	saves    int
	savedAll []*domain.Reservation
}

func newMockStorage(loaded ...*domain.Reservation) *mockStorage {
	return &mockStorage{records: make(map[string]*domain.Reservation), loaded: loaded}
}

func (m *mockStorage) LoadAll(_ context.Context) ([]*domain.Reservation, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.loaded, nil
}

func (m *mockStorage) Save(_ context.Context, r *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.records[r.ID] = r.Clone()
	return nil
}

func (m *mockStorage) SaveAll(_ context.Context, list []*domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedAll = append(m.savedAll, list...)
	return nil
}

type mockVenues map[string]*domain.Venue

func (m mockVenues) GetVenue(id string) (*domain.Venue, error) {
	v, ok := m[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})  {}
func (mockLogger) Warn(string, ...interface{})  {}
func (mockLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type countingMetrics struct {
	created, cancelled, finalized, rejected int
	occupied                                int
}

func (c *countingMetrics) ReservationCreated(string)   { c.created++ }
func (c *countingMetrics) ReservationCancelled(string) { c.cancelled++ }
func (c *countingMetrics) ReservationFinalized(string) { c.finalized++ }
func (c *countingMetrics) CapacityRejected(string)     { c.rejected++ }
func (c *countingMetrics) SetOccupiedSeats(n int)      { c.occupied = n }

var testDate = time.Date(2025, 10, 23, 0, 0, 0, 0, time.UTC)

const testSlot = "2025-10-23_V1_12:00-13:00"

func newTestService(t *testing.T, capacity int, loaded ...*domain.Reservation) (*Service, *mockStorage, *countingMetrics) {
	t.Helper()

	storage := newMockStorage(loaded...)
	venues := mockVenues{"V1": {ID: "V1", Name: "Central", Capacity: capacity}}
	metrics := &countingMetrics{}

	svc := NewService(storage, venues, metrics, mockLogger{})
	svc.timeProvider = &fixedTime{now: time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.Init(context.Background()))

	return svc, storage, metrics
}

func newReservation(id, userID string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    userID,
		VenueID:   "V1",
		SlotID:    ptr.Ptr(testSlot),
		Meal:      ptr.Ptr(domain.MealLunch),
		SlotStart: ptr.Ptr(types.TimeString("12:00")),
		SlotEnd:   ptr.Ptr(types.TimeString("13:00")),
		Date:      testDate,
		Total:     domain.DefaultReservationFee,
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("capacity two: third reservation rejected, cancel frees a seat", func(t *testing.T) {
		svc, _, metrics := newTestService(t, 2)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)
		_, err = svc.Create(ctx, newReservation("R2", "u2"))
		require.NoError(t, err)
		assert.Equal(t, 2, svc.SlotCount(testSlot))

		_, err = svc.Create(ctx, newReservation("R3", "u3"))
		assert.ErrorIs(t, err, ErrSlotUnavailable)
		assert.Equal(t, 2, svc.SlotCount(testSlot))
		assert.Equal(t, 1, metrics.rejected)

		_, ok := svc.GetByID("R3")
		assert.False(t, ok)

		_, err = svc.Cancel(ctx, "R1", "")
		require.NoError(t, err)
		assert.Equal(t, 1, svc.SlotCount(testSlot))

		_, err = svc.Create(ctx, newReservation("R3", "u3"))
		require.NoError(t, err)
		assert.Equal(t, 2, svc.SlotCount(testSlot))
		assert.Equal(t, 2, metrics.occupied)
	})

	t.Run("status forced to ACTIVE", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		in := newReservation("R1", "u1")
		in.Status = domain.StatusCancelled

		got, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, got.Status)
		assert.Equal(t, 1, svc.SlotCount(testSlot))
	})

	t.Run("generates id when empty", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		got, err := svc.Create(ctx, newReservation("", "u1"))
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)

		stored, ok := svc.GetByID(got.ID)
		require.True(t, ok)
		assert.Equal(t, got.ID, stored.ID)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, newReservation("R1", "u2"))
		assert.ErrorIs(t, err, ErrDuplicateReservation)
		assert.Equal(t, 1, svc.SlotCount(testSlot))
	})

	t.Run("unknown venue", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		in := newReservation("R1", "u1")
		in.VenueID = "NOPE"

		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("slot of another venue rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		in := newReservation("R1", "u1")
		in.SlotID = ptr.Ptr("2025-10-23_V2_12:00-13:00")

		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, svc.SlotCount("2025-10-23_V2_12:00-13:00"))
	})

	t.Run("slot id must match a generated slot", func(t *testing.T) {
		cases := map[string]string{
			"outside any meal window": "2025-10-23_V1_03:00-04:00",
			"garbage suffix":          "2025-10-23_V1_junk",
			"two hour span":           "2025-10-23_V1_07:00-09:00",
			"other hour of same meal": "2025-10-23_V1_13:00-14:00",
			"venue id prefix":         "2025-10-23_V1_X_12:00-13:00",
			"other date":              "2025-10-24_V1_12:00-13:00",
		}
		for name, slotID := range cases {
			t.Run(name, func(t *testing.T) {
				svc, storage, _ := newTestService(t, 5)

				in := newReservation("R1", "u1")
				in.SlotID = ptr.Ptr(slotID)

				_, err := svc.Create(ctx, in)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Equal(t, 0, svc.SlotCount(slotID))
				assert.Equal(t, 0, svc.SlotCount(testSlot))
				assert.Equal(t, 0, storage.saves)
			})
		}
	})

	t.Run("slot without meal or start rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		in := newReservation("R1", "u1")
		in.Meal = nil
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)

		in = newReservation("R1", "u1")
		in.SlotStart = nil
		_, err = svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, svc.SlotCount(testSlot))
	})

	t.Run("start outside meal window rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		in := newReservation("R1", "u1")
		in.Meal = ptr.Ptr(domain.MealBreakfast)

		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, svc.SlotCount(testSlot))
	})

	t.Run("mismatched end rejected, missing end filled", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		in := newReservation("R1", "u1")
		in.SlotEnd = ptr.Ptr(types.TimeString("14:00"))
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)

		in = newReservation("R1", "u1")
		in.SlotEnd = nil
		got, err := svc.Create(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, got.SlotEnd)
		assert.Equal(t, types.TimeString("13:00"), *got.SlotEnd)
		assert.Equal(t, 1, svc.SlotCount(testSlot))
	})

	t.Run("missing user", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", ""))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("input not retained", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		in := newReservation("R1", "u1")
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)

		in.UserID = "mutated"
		stored, ok := svc.GetByID("R1")
		require.True(t, ok)
		assert.Equal(t, "u1", stored.UserID)
	})

	t.Run("persistence failure rolls back", func(t *testing.T) {
		svc, storage, metrics := newTestService(t, 5)
		storage.saveErr = errors.New("disk full")

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		assert.ErrorIs(t, err, ErrPersistence)

		_, ok := svc.GetByID("R1")
		assert.False(t, ok)
		assert.Equal(t, 0, svc.SlotCount(testSlot))
		assert.Equal(t, 0, metrics.created)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("create then cancel nets zero", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)

		got, err := svc.Cancel(ctx, "R1", "plans changed")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, got.Status)
		require.NotNil(t, got.CancelledAt)
		require.NotNil(t, got.CancellationReason)
		assert.Equal(t, "plans changed", *got.CancellationReason)
		assert.Equal(t, 0, svc.SlotCount(testSlot))
	})

	t.Run("double cancel is a no-op", func(t *testing.T) {
		svc, storage, metrics := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)
		_, err = svc.Create(ctx, newReservation("R2", "u2"))
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, "R1", "")
		require.NoError(t, err)
		saves := storage.saves

		got, err := svc.Cancel(ctx, "R1", "")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, got.Status)
		assert.Equal(t, 1, svc.SlotCount(testSlot))
		assert.Equal(t, saves, storage.saves)
		assert.Equal(t, 1, metrics.cancelled)
	})

	t.Run("finalized cannot be cancelled", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)
		_, err = svc.Finalize(ctx, "R1", nil)
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, "R1", "")
		assert.ErrorIs(t, err, ErrInvalidTransition)

		got, ok := svc.GetByID("R1")
		require.True(t, ok)
		assert.Equal(t, domain.StatusFinalized, got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Cancel(ctx, "missing", "")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("persistence failure keeps reservation active", func(t *testing.T) {
		svc, storage, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)
		storage.saveErr = errors.New("disk full")

		_, err = svc.Cancel(ctx, "R1", "reason")
		assert.ErrorIs(t, err, ErrPersistence)

		got, ok := svc.GetByID("R1")
		require.True(t, ok)
		assert.Equal(t, domain.StatusActive, got.Status)
		assert.Nil(t, got.CancelledAt)
		assert.Nil(t, got.CancellationReason)
		assert.Equal(t, 1, svc.SlotCount(testSlot))
	})
}

func TestService_Finalize(t *testing.T) {
	ctx := context.Background()
	svc, _, metrics := newTestService(t, 1)

	_, err := svc.Create(ctx, newReservation("R1", "u1"))
	require.NoError(t, err)

	got, err := svc.Finalize(ctx, "R1", ptr.Ptr(domain.PaymentCard))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFinalized, got.Status)
	require.NotNil(t, got.FinalizedAt)
	require.NotNil(t, got.PaymentMethod)
	assert.Equal(t, domain.PaymentCard, *got.PaymentMethod)
	assert.Equal(t, 1, metrics.finalized)

	// Завершённое бронирование освобождает место
	assert.Equal(t, 0, svc.SlotCount(testSlot))
	_, err = svc.Create(ctx, newReservation("R2", "u2"))
	assert.NoError(t, err)

	// Повторное завершение ничего не меняет
	again, err := svc.Finalize(ctx, "R1", nil)
	require.NoError(t, err)
	assert.Equal(t, got.FinalizedAt, again.FinalizedAt)
	assert.Equal(t, 1, metrics.finalized)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("reactivation rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, "R1", "")
		require.NoError(t, err)

		_, err = svc.Update(ctx, "R1", models.Patch{Status: ptr.Ptr(domain.StatusActive)})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, 0, svc.SlotCount(testSlot))
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)

		_, err = svc.Update(ctx, "R1", models.Patch{Status: ptr.Ptr(domain.ReservationStatus("PENDIENTE"))})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("payment method on active reservation", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)

		got, err := svc.Update(ctx, "R1", models.Patch{PaymentMethod: ptr.Ptr(domain.PaymentCash)})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, got.Status)
		assert.Equal(t, domain.PaymentCash, *got.PaymentMethod)
		assert.Equal(t, 1, svc.SlotCount(testSlot))
	})

	t.Run("payment method on cancelled reservation", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, "R1", "")
		require.NoError(t, err)

		_, err = svc.Update(ctx, "R1", models.Patch{PaymentMethod: ptr.Ptr(domain.PaymentCash)})
		assert.ErrorIs(t, err, ErrNotEditable)
	})

	t.Run("replace items", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)

		items := []domain.LineItem{{ConsumableID: "C1", Name: "Soup", Quantity: 2, UnitPrice: 1500}}
		got, err := svc.Update(ctx, "R1", models.Patch{Items: &items, Total: ptr.Ptr(3000.0)})
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 3000.0, got.Total)

		_, err = svc.Update(ctx, "R1", models.Patch{Items: &items})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("items on finalized reservation", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)
		_, err = svc.Finalize(ctx, "R1", nil)
		require.NoError(t, err)

		items := []domain.LineItem{}
		_, err = svc.Update(ctx, "R1", models.Patch{Items: &items, Total: ptr.Ptr(0.0)})
		assert.ErrorIs(t, err, ErrNotEditable)
	})

	t.Run("reason without cancellation", func(t *testing.T) {
		svc, _, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)

		_, err = svc.Update(ctx, "R1", models.Patch{CancellationReason: ptr.Ptr("why")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty patch returns current state", func(t *testing.T) {
		svc, storage, _ := newTestService(t, 5)

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		require.NoError(t, err)
		saves := storage.saves

		got, err := svc.Update(ctx, "R1", models.Patch{})
		require.NoError(t, err)
		assert.Equal(t, "R1", got.ID)
		assert.Equal(t, saves, storage.saves)
	})
}

func TestService_Init(t *testing.T) {
	ctx := context.Background()

	t.Run("operations rejected before init", func(t *testing.T) {
		svc := NewService(newMockStorage(), mockVenues{}, nil, mockLogger{})

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		assert.ErrorIs(t, err, ErrNotInitialized)

		_, err = svc.Cancel(ctx, "R1", "")
		assert.ErrorIs(t, err, ErrNotInitialized)

		_, err = svc.ListByUser("u1")
		assert.ErrorIs(t, err, ErrNotInitialized)
	})

	t.Run("legacy status coerced and ledger rebuilt", func(t *testing.T) {
		legacy := newReservation("OLD1", "u1")
		legacy.Status = domain.ReservationStatus("pendiente")
		cancelled := newReservation("OLD2", "u2")
		cancelled.Status = domain.StatusCancelled
		active := newReservation("OLD3", "u3")
		active.Status = domain.StatusActive

		svc, storage, metrics := newTestService(t, 5, legacy, cancelled, active)

		got, ok := svc.GetByID("OLD1")
		require.True(t, ok)
		assert.Equal(t, domain.StatusActive, got.Status)
		assert.Equal(t, 2, svc.SlotCount(testSlot))
		assert.Equal(t, 2, metrics.occupied)

		require.Len(t, storage.savedAll, 1)
		assert.Equal(t, "OLD1", storage.savedAll[0].ID)
	})

	t.Run("overbooked legacy slot counted as is", func(t *testing.T) {
		var loaded []*domain.Reservation
		for i := 0; i < 3; i++ {
			r := newReservation(fmt.Sprintf("OLD%d", i), "u")
			r.Status = domain.StatusActive
			loaded = append(loaded, r)
		}

		svc, _, _ := newTestService(t, 2, loaded...)
		assert.Equal(t, 3, svc.SlotCount(testSlot))

		_, err := svc.Create(ctx, newReservation("R1", "u1"))
		assert.ErrorIs(t, err, ErrSlotUnavailable)

		slots := svc.Occupancy([]domain.Slot{{ID: testSlot, Capacity: 2}})
		assert.Equal(t, 2, slots[0].ReservedCount)
	})

	t.Run("load failure", func(t *testing.T) {
		storage := newMockStorage()
		storage.loadErr = errors.New("connection refused")
		svc := NewService(storage, mockVenues{}, nil, mockLogger{})

		err := svc.Init(ctx)
		assert.ErrorIs(t, err, ErrPersistence)

		_, err = svc.ListByUser("u1")
		assert.ErrorIs(t, err, ErrNotInitialized)
	})
}

func TestService_Lists(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, 10)
	clock := svc.timeProvider.(*fixedTime)

	mk := func(id, user string, day int) {
		r := newReservation(id, user)
		r.Date = time.Date(2025, 10, day, 0, 0, 0, 0, time.UTC)
		r.SlotID = ptr.Ptr(fmt.Sprintf("2025-10-%02d_V1_12:00-13:00", day))
		_, err := svc.Create(ctx, r)
		require.NoError(t, err)
		clock.now = clock.now.Add(time.Minute)
	}

	mk("A", "u1", 23)
	mk("B", "u1", 24)
	mk("C", "u1", 23)
	mk("D", "u2", 23)

	_, err := svc.Cancel(ctx, "B", "")
	require.NoError(t, err)

	t.Run("by user in listing order", func(t *testing.T) {
		list, err := svc.ListByUser("u1")
		require.NoError(t, err)

		ids := make([]string, 0, len(list))
		for _, r := range list {
			ids = append(ids, r.ID)
		}
		// Активные первыми, внутри одной даты сначала более поздние по созданию
		assert.Equal(t, []string{"C", "A", "B"}, ids)
	})

	t.Run("unknown user", func(t *testing.T) {
		list, err := svc.ListByUser("nobody")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("by venue with date and status", func(t *testing.T) {
		day := time.Date(2025, 10, 23, 0, 0, 0, 0, time.UTC)

		list, err := svc.ListByVenue(domain.VenueReservationsFilter{VenueID: "V1", Date: &day})
		require.NoError(t, err)
		assert.Len(t, list, 3)

		list, err = svc.ListByVenue(domain.VenueReservationsFilter{
			VenueID: "V1",
			Status:  ptr.Ptr(domain.StatusCancelled),
		})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "B", list[0].ID)
	})
}

func TestService_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, 10)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Create(ctx, newReservation(fmt.Sprintf("R%d", i), "u"))
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, success)
	assert.Equal(t, 10, svc.SlotCount(testSlot))
}
