package cache

import (
	"context"
	"sync"
	"time"

	"dive-booking-gateway/internal/pkg/clock"
)

const (
	// expired entries are swept from Set at most this often
	sweepInterval = time.Minute

	DefaultMaxEntries = 10000
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a process-local TTL cache bounded to maxEntries.
// Expired entries are dropped on read and by a periodic sweep on write.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	clock      clock.Clock
	maxEntries int
	lastSweep  time.Time
}

func NewMemoryCache(c clock.Clock, maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		entries:    make(map[string]entry),
		clock:      c,
		maxEntries: maxEntries,
		lastSweep:  c.Now(),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !m.clock.Now().Before(e.expiresAt) {
		m.mu.Lock()
		// re-check: a concurrent Set may have refreshed it
		if cur, ok := m.entries[key]; ok && !m.clock.Now().Before(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if now.Sub(m.lastSweep) >= sweepInterval {
		m.sweepLocked(now)
	}
	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.maxEntries {
		m.sweepLocked(now)
		if len(m.entries) >= m.maxEntries {
			m.evictSoonestLocked()
		}
	}
	m.entries[key] = entry{value: value, expiresAt: now.Add(ttl)}
	return nil
}

func (m *MemoryCache) sweepLocked(now time.Time) {
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
		}
	}
	m.lastSweep = now
}

// evictSoonestLocked drops the entry closest to expiry.
func (m *MemoryCache) evictSoonestLocked() {
	var (
		victim  string
		soonest time.Time
		found   bool
	)
	for k, e := range m.entries {
		if !found || e.expiresAt.Before(soonest) {
			victim, soonest, found = k, e.expiresAt, true
		}
	}
	if found {
		delete(m.entries, victim)
	}
}
