package memory

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// MenuStorage недельное меню в памяти процесса
type MenuStorage struct {
	mu      sync.Mutex
	entries map[domain.MenuKey]domain.MenuEntry
}

// NewMenuStorage создает пустое хранилище меню
func NewMenuStorage() *MenuStorage {
	return &MenuStorage{entries: make(map[domain.MenuKey]domain.MenuEntry)}
}

// ListMenu возвращает копии ячеек площадки без определённого порядка
func (s *MenuStorage) ListMenu(ctx context.Context, venueID string) ([]domain.MenuEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.MenuEntry, 0)
	for key, e := range s.entries {
		if key.VenueID == venueID {
			result = append(result, e.Clone())
		}
	}
	return result, nil
}

// SaveMenu заменяет ячейку
func (s *MenuStorage) SaveMenu(ctx context.Context, entry domain.MenuEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entry.VenueID == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.MenuKey] = entry.Clone()
	return nil
}

// DeleteMenu удаляет ячейку, отсутствующая ячейка не ошибка
func (s *MenuStorage) DeleteMenu(ctx context.Context, key domain.MenuKey) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
