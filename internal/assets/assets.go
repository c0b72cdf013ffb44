// Package assets handles terrain asset loading and caching.
package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/arena/internal/logger"
	"github.com/Faultbox/arena/pkg/math"
)

// Manager loads terrain meshes from disk and keeps their triangle soups
// cached by path.
type Manager struct {
	root  string
	cache *Cache
	mu    sync.Mutex
}

// NewManager creates a new asset manager. Relative paths are resolved
// against root.
func NewManager(root string) *Manager {
	return &Manager{
		root:  root,
		cache: NewCache(),
	}
}

// Terrain returns the world-space triangle soup of the model at path.
func (m *Manager) Terrain(path string) ([]math.Vec3, error) {
	full := m.resolve(path)

	// Check cache first
	if soup, ok := m.cache.Get(full); ok {
		return soup, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another caller may have loaded it while we waited
	if soup, ok := m.cache.Get(full); ok {
		return soup, nil
	}

	soup, err := LoadTriangles(full)
	if err != nil {
		return nil, fmt.Errorf("loading terrain %s: %w", path, err)
	}
	m.cache.Set(full, soup)

	logger.Info("terrain loaded",
		zap.String("path", full),
		zap.Int("triangles", len(soup)/3))
	return soup, nil
}

func (m *Manager) resolve(path string) string {
	if m.root == "" || filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(m.root, path)
}

// Close drops every cached soup.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded triangle soups.
type Cache struct {
	data map[string][]math.Vec3
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]math.Vec3),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]math.Vec3, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []math.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]math.Vec3)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
