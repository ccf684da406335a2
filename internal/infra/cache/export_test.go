//go:build unit

package cache

func EntryCount(m *MemoryCache) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
