package repository

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/batterlab/internal/domain/session"
	"github.com/okian/batterlab/pkg/metrics"
)

// MemoryStore is a bounded, concurrency-safe Store.
//
// Sessions are kept in store order; a Put of an existing id moves it to the
// back, and eviction removes from the front.
type MemoryStore struct {
	mu          sync.RWMutex
	maxSessions int
	now         func() time.Time
	order       *list.List
	byID        map[uuid.UUID]*list.Element
}

type slot struct {
	s        *session.Session
	storedAt time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		maxSessions: DefaultMaxSessions,
		now:         time.Now,
		order:       list.New(),
		byID:        make(map[uuid.UUID]*list.Element),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put implements Store.
func (m *MemoryStore) Put(ctx context.Context, s *session.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.ID == uuid.Nil {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.byID[s.ID]; ok {
		m.order.Remove(el)
		delete(m.byID, s.ID)
	}
	for m.order.Len() >= m.maxSessions {
		oldest := m.order.Front()
		m.order.Remove(oldest)
		delete(m.byID, oldest.Value.(slot).s.ID)
		metrics.RecordSessionEvicted()
	}
	m.byID[s.ID] = m.order.PushBack(slot{s: s, storedAt: m.now()})
	metrics.UpdateSessionsActive(m.order.Len())
	return nil
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	el, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return el.Value.(slot).s, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.byID[id]; ok {
		m.order.Remove(el)
		delete(m.byID, id)
		metrics.UpdateSessionsActive(m.order.Len())
	}
	return nil
}

// Count implements Store.
func (m *MemoryStore) Count(_ context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.order.Len()
}

// StoredAt returns when id was last stored, false when unknown.
func (m *MemoryStore) StoredAt(id uuid.UUID) (time.Time, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	el, ok := m.byID[id]
	if !ok {
		return time.Time{}, false
	}
	return el.Value.(slot).storedAt, true
}
