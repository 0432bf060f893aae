// Package memory хранилище бронирований в памяти процесса.
// Используется драйвером storage.driver = "memory" и в тестах.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// ErrEmptyID возвращается при сохранении записи без ID
var ErrEmptyID = errors.New("memory.storage: id is empty")

// Storage хранит копии бронирований
type Storage struct {
	mu      sync.Mutex
	records map[string]*domain.Reservation
}

// NewStorage создает хранилище, опционально с начальными данными
func NewStorage(initial ...*domain.Reservation) *Storage {
	s := &Storage{records: make(map[string]*domain.Reservation, len(initial))}
	for _, r := range initial {
		if r != nil {
			s.records[r.ID] = r.Clone()
		}
	}
	return s
}

// LoadAll возвращает копии всех бронирований в порядке ID
func (s *Storage) LoadAll(ctx context.Context) ([]*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Reservation, 0, len(s.records))
	for _, r := range s.records {
		result = append(result, r.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// Save сохраняет копию бронирования
func (s *Storage) Save(ctx context.Context, r *domain.Reservation) error {
	return s.SaveAll(ctx, []*domain.Reservation{r})
}

// SaveAll сохраняет копии всех бронирований. При ошибке не сохраняется ничего.
func (s *Storage) SaveAll(ctx context.Context, list []*domain.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, r := range list {
		if r == nil || r.ID == "" {
			return ErrEmptyID
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range list {
		s.records[r.ID] = r.Clone()
	}
	return nil
}

// Len количество сохранённых бронирований
func (s *Storage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}
