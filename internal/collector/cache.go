package collector

import (
	"sync"

	"github.com/joshp123/govee-collector/internal/h5075"
)

// Cache holds the latest reading per broadcast name. Entries are replaced
// whole and never expire.
type Cache struct {
	mu       sync.RWMutex
	readings map[string]h5075.Reading
}

func NewCache() *Cache {
	return &Cache{readings: make(map[string]h5075.Reading)}
}

// Get returns the freshest reading for name.
func (c *Cache) Get(name string) (h5075.Reading, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	reading, ok := c.readings[name]
	return reading, ok
}

func (c *Cache) put(name string, reading h5075.Reading) {
	c.mu.Lock()
	c.readings[name] = reading
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.readings)
}

// Snapshot copies every entry.
func (c *Cache) Snapshot() map[string]h5075.Reading {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]h5075.Reading, len(c.readings))
	for name, reading := range c.readings {
		out[name] = reading
	}
	return out
}
