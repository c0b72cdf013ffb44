package assets

import (
	"testing"

	"github.com/qmuntal/gltf"
)

func TestManagerCachesTerrain(t *testing.T) {
	path := writeGLB(t, &gltf.Node{Name: "root", Rotation: [4]float64{0, 0, 0, 1}, Scale: [3]float64{1, 1, 1}}, true)
	m := NewManager("")
	defer m.Close()

	first, err := m.Terrain(path)
	if err != nil {
		t.Fatalf("Terrain: %v", err)
	}
	second, err := m.Terrain(path)
	if err != nil {
		t.Fatalf("Terrain: %v", err)
	}

	if &first[0] != &second[0] {
		t.Error("expected the cached soup on the second load")
	}
	if hits, _ := m.cache.Stats(); hits != 1 {
		t.Errorf("expected 1 cache hit, got %d", hits)
	}
}

func TestManagerMissingFile(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Terrain("missing.glb"); err == nil {
		t.Error("expected error for missing terrain")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Set("a", nil)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected cached entry")
	}
	c.Clear()
	if _, ok := c.Get("a"); ok {
		t.Error("expected cache to be empty after Clear")
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 1 {
		t.Errorf("expected stats reset then one miss, got %d/%d", hits, misses)
	}
}
