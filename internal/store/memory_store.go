// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dayflow/dayflow/internal/event"
)

// MemoryStore is an in-memory EventStore intended for tests and local
// iteration. Not durable; not suitable for production.
type MemoryStore struct {
	mu sync.RWMutex

	seq     uint64
	entries []record

	byID   map[uuid.UUID]record
	byType map[event.Type][]record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[uuid.UUID]record),
		byType: make(map[event.Type][]record),
	}
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) Save(ctx context.Context, e event.Event) (event.Event, error) {
	m.mu.Lock()
	m.seq++
	rec := record{seq: m.seq, ev: e}
	m.entries = append(m.entries, rec)
	m.byID[e.ID()] = rec
	m.byType[e.Type()] = append(m.byType[e.Type()], rec)
	m.mu.Unlock()
	return e, nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id uuid.UUID) (event.Event, error) {
	m.mu.RLock()
	rec, ok := m.byID[id]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return rec.ev, nil
}

func (m *MemoryStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.RLock()
	_, ok := m.byID[id]
	m.mu.RUnlock()
	return ok, nil
}

func (m *MemoryStore) FindAll(ctx context.Context) ([]event.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]event.Event, len(m.entries))
	for i, rec := range m.entries {
		out[i] = rec.ev
	}
	return out, nil
}

func (m *MemoryStore) FindByEventType(ctx context.Context, t event.Type) ([]event.Event, error) {
	m.mu.RLock()
	recs := append([]record(nil), m.byType[t]...)
	m.mu.RUnlock()
	return chronological(recs), nil
}

func (m *MemoryStore) FindByTimestampBetween(ctx context.Context, start, end time.Time) ([]event.Event, error) {
	return m.filter(func(r record) bool {
		return inRange(r.ev.Timestamp(), start, end)
	})
}

func (m *MemoryStore) FindByEventTypeAndTimestampBetween(ctx context.Context, t event.Type, start, end time.Time) ([]event.Event, error) {
	m.mu.RLock()
	var recs []record
	for _, r := range m.byType[t] {
		if inRange(r.ev.Timestamp(), start, end) {
			recs = append(recs, r)
		}
	}
	m.mu.RUnlock()
	return chronological(recs), nil
}

func (m *MemoryStore) FindAfterTimestamp(ctx context.Context, ts time.Time) ([]event.Event, error) {
	return m.filter(func(r record) bool {
		return r.ev.Timestamp().After(ts)
	})
}

func (m *MemoryStore) FindBeforeTimestamp(ctx context.Context, ts time.Time) ([]event.Event, error) {
	return m.filter(func(r record) bool {
		return r.ev.Timestamp().Before(ts)
	})
}

func (m *MemoryStore) filter(keep func(record) bool) ([]event.Event, error) {
	m.mu.RLock()
	var recs []record
	for _, r := range m.entries {
		if keep(r) {
			recs = append(recs, r)
		}
	}
	m.mu.RUnlock()
	return chronological(recs), nil
}

func (m *MemoryStore) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries), nil
}

func (m *MemoryStore) CountByEventType(ctx context.Context, t event.Type) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byType[t]), nil
}

func (m *MemoryStore) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	m.seq = 0
	m.entries = nil
	m.byID = make(map[uuid.UUID]record)
	m.byType = make(map[event.Type][]record)
	m.mu.Unlock()
	return nil
}

// Ensure interface compliance at compile time.
var _ EventStore = (*MemoryStore)(nil)
