// Package terrain answers ground queries against a static triangle soup.
package terrain

import (
	gomath "math"

	"github.com/Faultbox/arena/pkg/math"
)

// NoGround is the height reported when no triangle could be evaluated at all.
const NoGround = -gomath.MaxFloat32

// DefaultHysteresis is the vertical tolerance band around a triangle surface.
const DefaultHysteresis = 0.05

// Query describes a vertical probe centered on Position.
// Hint is the triangle index that supported the probe last frame, or -1.
type Query struct {
	Position math.Vec3
	Radius   float32
	Height   float32
	Hint     int
}

// Result is the answer to a ground query.
// Index is -1 when no triangle supports the probe; Height is then advisory
// only (lowest candidate surface seen, or NoGround).
type Result struct {
	Height float32
	Index  int
}

// Grounded reports whether a supporting triangle was found.
func (r Result) Grounded() bool {
	return r.Index >= 0
}

// CollisionSource is a read-only terrain backend a character can stand on.
type CollisionSource interface {
	// CheckCollision finds the highest triangle overlapping the probe.
	CheckCollision(q Query) Result
	// GetTriangleNormal returns the unit normal of a triangle, or Up when
	// the index is invalid.
	GetTriangleNormal(index int) math.Vec3
	// GetNearbyTriangles lists triangles whose centroid is within radius.
	GetNearbyTriangles(position math.Vec3, radius float32) []int
}

// Options tunes collider behavior.
type Options struct {
	// Hysteresis widens the vertical overlap test on both ends.
	Hysteresis float32
	// RadiusFootprint lets triangles within Query.Radius of the probe's
	// projection onto their plane count as supporting, even when the
	// projection falls outside them. Disabled by default: only the projected
	// point is tested.
	RadiusFootprint bool
}

// DefaultOptions returns the reference collider settings.
func DefaultOptions() Options {
	return Options{
		Hysteresis: DefaultHysteresis,
	}
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Heightmap is a regular grid of corner altitudes used to build terrain
// without a model file.
type Heightmap struct {
	Altitudes [][]float32 // 2D array [x][z] of corner heights
	TilesX    int         // Number of tiles in X direction
	TilesZ    int         // Number of tiles in Z direction
	TileZoom  float32     // Size of each tile in world units
	Origin    math.Vec3   // World position of corner [0][0] (Y ignored)
}
