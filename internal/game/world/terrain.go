package world

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/arena/internal/assets"
	"github.com/Faultbox/arena/internal/config"
	"github.com/Faultbox/arena/internal/engine/terrain"
	"github.com/Faultbox/arena/pkg/math"
)

// Procedural terrain shapes.
const (
	ShapeFlat  = "flat"
	ShapeRamp  = "ramp"
	ShapeHills = "hills"
)

// LoadTerrain returns the triangle soup for the configured terrain: the
// model file when one is set, otherwise a generated heightmap.
func LoadTerrain(cfg *config.Config, m *assets.Manager) ([]math.Vec3, error) {
	if cfg.Terrain.Model != "" {
		return m.Terrain(cfg.Terrain.Model)
	}
	hm, err := ProceduralHeightmap(cfg.Terrain.Procedural)
	if err != nil {
		return nil, err
	}
	return hm.Triangles(), nil
}

// ProceduralHeightmap builds a heightmap grid centered on the origin.
func ProceduralHeightmap(pc config.ProceduralConfig) (*terrain.Heightmap, error) {
	if pc.TilesX < 1 || pc.TilesZ < 1 || pc.TileSize <= 0 {
		return nil, fmt.Errorf("procedural terrain needs a positive grid, got %dx%d tiles of %v", pc.TilesX, pc.TilesZ, pc.TileSize)
	}

	var heightFn terrain.HeightFunc
	switch pc.Shape {
	case ShapeFlat, "":
		heightFn = nil
	case ShapeRamp:
		// Rises Amplitude every Wavelength units along +X
		grade := float32(0)
		if pc.Wavelength > 0 {
			grade = pc.Amplitude / pc.Wavelength
		}
		heightFn = func(x, _ float32) float32 {
			return x * grade
		}
	case ShapeHills:
		if pc.Wavelength <= 0 {
			return nil, fmt.Errorf("hills terrain needs a positive wavelength, got %v", pc.Wavelength)
		}
		k := 2 * gomath.Pi / float64(pc.Wavelength)
		heightFn = func(x, z float32) float32 {
			return pc.Amplitude * float32(gomath.Sin(k*float64(x))*gomath.Cos(k*float64(z)))
		}
	default:
		return nil, fmt.Errorf("unknown terrain shape %q", pc.Shape)
	}

	origin := math.Vec3{
		X: -float32(pc.TilesX) * pc.TileSize / 2,
		Z: -float32(pc.TilesZ) * pc.TileSize / 2,
	}
	return terrain.BuildHeightmap(pc.TilesX, pc.TilesZ, pc.TileSize, origin, heightFn), nil
}
