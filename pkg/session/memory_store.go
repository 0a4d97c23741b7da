package session

import (
	"context"
	"sync"
	"time"
)

type recordKey struct {
	sessionID       string
	applicationName string
}

// MemoryStore implements Store using in-memory storage. It is intended for
// tests and single-process deployments; the provider's lock protocol works
// against it the same way it does against a real column store.
type MemoryStore struct {
	mu        sync.RWMutex
	records   map[recordKey]*Record
	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore creates an in-memory store. A positive cleanupInterval
// starts a background sweep of expired records; the provider's lazy
// deletion on read works either way, the sweep only bounds memory growth.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		records: make(map[recordKey]*Record),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Find returns a copy of the record for the key, or ErrSessionNotFound.
func (m *MemoryStore) Find(ctx context.Context, sessionID, applicationName string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[recordKey{sessionID, applicationName}]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return rec.Clone(), nil
}

// Save upserts a copy of the record.
func (m *MemoryStore) Save(ctx context.Context, record *Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[recordKey{record.SessionID, record.ApplicationName}] = record.Clone()
	return nil
}

// Delete removes the record for the key. Absent records are ignored.
func (m *MemoryStore) Delete(ctx context.Context, sessionID, applicationName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, recordKey{sessionID, applicationName})
	return nil
}

// DeleteExpired removes all expired records and returns how many were removed.
func (m *MemoryStore) DeleteExpired(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	removed := 0
	for key, rec := range m.records {
		if rec.ExpiredAt(now) {
			delete(m.records, key)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (m *MemoryStore) Close() error {
	m.closeOnce.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
			close(m.done)
		}
	})
	return nil
}

func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_, _ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}
