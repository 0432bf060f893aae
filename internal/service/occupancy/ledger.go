// Package occupancy хранит журнал занятости: количество активных бронирований на каждый слот.
package occupancy

import (
	"sync"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
)

// Ledger журнал занятости слотов. Каждая операция атомарна.
// Счётчик никогда не бывает отрицательным.
type Ledger struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewLedger создает пустой журнал
func NewLedger() *Ledger {
	return &Ledger{counts: make(map[string]int)}
}

// Count возвращает количество занятых мест, 0 для неизвестного слота
func (l *Ledger) Count(slotID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.counts[slotID]
}

// TryReserve занимает место в слоте.
// Если слот заполнен, возвращает false и ничего не меняет.
func (l *Ledger) TryReserve(slot domain.Slot) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.counts[slot.ID] >= slot.Capacity {
		return false
	}

	l.counts[slot.ID]++
	return true
}

// Release освобождает место в слоте. На нулевом счётчике ничего не делает.
func (l *Ledger) Release(slotID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch n := l.counts[slotID]; {
	case n <= 1:
		delete(l.counts, slotID)
	default:
		l.counts[slotID] = n - 1
	}
}

// Restore отменяет Release без проверки вместимости.
// Используется только для отката операции, которая не смогла сохраниться.
func (l *Ledger) Restore(slotID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[slotID]++
}

// Annotate накладывает текущую занятость на сгенерированные слоты.
// Для отображения значение ограничено вместимостью слота.
func (l *Ledger) Annotate(slots []domain.Slot) []domain.Slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]domain.Slot, len(slots))
	for i, slot := range slots {
		count := l.counts[slot.ID]
		if count > slot.Capacity {
			count = slot.Capacity
		}
		slot.ReservedCount = count
		result[i] = slot
	}

	return result
}

// Rebuild пересчитывает журнал по набору бронирований.
// Учитываются только активные бронирования со ссылкой на слот.
// Возвращает число слотов с ненулевой занятостью.
func (l *Ledger) Rebuild(reservations []*domain.Reservation) int {
	counts := make(map[string]int)
	for _, r := range reservations {
		if r.HoldsSlot() {
			counts[*r.SlotID]++
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts = counts
	return len(counts)
}

// Snapshot возвращает копию всех ненулевых счётчиков
func (l *Ledger) Snapshot() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make(map[string]int, len(l.counts))
	for id, n := range l.counts {
		snapshot[id] = n
	}
	return snapshot
}

// Total возвращает общее количество занятых мест по всем слотам
func (l *Ledger) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, n := range l.counts {
		total += n
	}
	return total
}
