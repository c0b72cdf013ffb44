package terrain

import (
	"github.com/Faultbox/arena/pkg/math"
)

// HeightFunc returns the ground altitude at a world XZ position.
type HeightFunc func(worldX, worldZ float32) float32

// BuildHeightmap samples heightFn at every tile corner of a tilesX by tilesZ
// grid of square tiles starting at origin.
func BuildHeightmap(tilesX, tilesZ int, tileZoom float32, origin math.Vec3, heightFn HeightFunc) *Heightmap {
	if tilesX < 1 {
		tilesX = 1
	}
	if tilesZ < 1 {
		tilesZ = 1
	}

	altitudes := make([][]float32, tilesX+1)
	for x := range tilesX + 1 {
		altitudes[x] = make([]float32, tilesZ+1)
		for z := range tilesZ + 1 {
			if heightFn != nil {
				wx := origin.X + float32(x)*tileZoom
				wz := origin.Z + float32(z)*tileZoom
				altitudes[x][z] = heightFn(wx, wz)
			}
		}
	}

	return &Heightmap{
		Altitudes: altitudes,
		TilesX:    tilesX,
		TilesZ:    tilesZ,
		TileZoom:  tileZoom,
		Origin:    origin,
	}
}

// FlatHeightmap returns one square tile (a single triangle pair) centered on
// the origin at altitude y, large enough to cover width x depth.
func FlatHeightmap(width, depth, y float32) *Heightmap {
	size := width
	if depth > size {
		size = depth
	}
	return BuildHeightmap(1, 1, size, math.Vec3{X: -size / 2, Z: -size / 2}, func(_, _ float32) float32 {
		return y
	})
}

// Triangles flattens the grid into a triangle soup, two triangles per tile,
// wound so their normals point up.
func (h *Heightmap) Triangles() []math.Vec3 {
	soup := make([]math.Vec3, 0, h.TilesX*h.TilesZ*6)
	for x := range h.TilesX {
		for z := range h.TilesZ {
			p00 := h.corner(x, z)
			p10 := h.corner(x+1, z)
			p01 := h.corner(x, z+1)
			p11 := h.corner(x+1, z+1)
			soup = append(soup, p00, p01, p10)
			soup = append(soup, p10, p01, p11)
		}
	}
	return soup
}

func (h *Heightmap) corner(x, z int) math.Vec3 {
	return math.Vec3{
		X: h.Origin.X + float32(x)*h.TileZoom,
		Y: h.Altitudes[x][z],
		Z: h.Origin.Z + float32(z)*h.TileZoom,
	}
}

// GetInterpolatedHeight returns the bilinearly interpolated altitude at a
// world position, clamped to the grid.
func (h *Heightmap) GetInterpolatedHeight(worldX, worldZ float32) float32 {
	if h == nil || h.TileZoom <= 0 {
		return 0
	}

	cellFX := (worldX - h.Origin.X) / h.TileZoom
	cellFZ := (worldZ - h.Origin.Z) / h.TileZoom

	cellX := int(math.Clamp(cellFX, 0, float32(h.TilesX-1)))
	cellZ := int(math.Clamp(cellFZ, 0, float32(h.TilesZ-1)))

	// Fractional position within cell (0-1)
	fracX := math.Clamp(cellFX-float32(cellX), 0, 1)
	fracZ := math.Clamp(cellFZ-float32(cellZ), 0, 1)

	south := h.Altitudes[cellX][cellZ]*(1-fracX) + h.Altitudes[cellX+1][cellZ]*fracX
	north := h.Altitudes[cellX][cellZ+1]*(1-fracX) + h.Altitudes[cellX+1][cellZ+1]*fracX
	return south*(1-fracZ) + north*fracZ
}
