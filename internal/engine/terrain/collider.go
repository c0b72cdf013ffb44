package terrain

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/arena/internal/logger"
	"github.com/Faultbox/arena/pkg/math"
)

// triangle caches the per-face data every query needs.
type triangle struct {
	a, b, c    math.Vec3
	normal     math.Vec3
	centroid   math.Vec3
	degenerate bool
}

// Collider owns a static triangle soup and answers ground queries against it.
// It is immutable after construction and safe to share between actors.
type Collider struct {
	tris   []triangle
	opts   Options
	valid  bool
	bounds Bounds
}

// NewCollider builds a collider from world-space vertices grouped in runs of
// three. A vertex count that is not a multiple of three is logged and yields
// a collider that never reports ground.
func NewCollider(vertices []math.Vec3, opts Options) *Collider {
	c := &Collider{opts: opts}

	if len(vertices)%3 != 0 {
		logger.Warn("collider vertex count is not a multiple of 3",
			zap.Int("vertices", len(vertices)))
		return c
	}

	c.valid = true
	c.tris = make([]triangle, len(vertices)/3)
	c.bounds = Bounds{
		Min: math.Vec3{X: gomath.MaxFloat32, Y: gomath.MaxFloat32, Z: gomath.MaxFloat32},
		Max: math.Vec3{X: -gomath.MaxFloat32, Y: -gomath.MaxFloat32, Z: -gomath.MaxFloat32},
	}

	degenerate := 0
	for i := range c.tris {
		a, b, v := vertices[i*3], vertices[i*3+1], vertices[i*3+2]
		n, ok := math.TriangleNormal(a, b, v)
		if !ok {
			degenerate++
		}
		c.tris[i] = triangle{
			a:          a,
			b:          b,
			c:          v,
			normal:     n,
			centroid:   a.Add(b).Add(v).Scale(1.0 / 3.0),
			degenerate: !ok,
		}
		for _, p := range [3]math.Vec3{a, b, v} {
			c.bounds.Min = vecMin(c.bounds.Min, p)
			c.bounds.Max = vecMax(c.bounds.Max, p)
		}
	}

	logger.Info("terrain collider built",
		zap.Int("triangles", len(c.tris)),
		zap.Int("degenerate", degenerate),
		zap.Float32("hysteresis", opts.Hysteresis),
		zap.Bool("radiusFootprint", opts.RadiusFootprint),
	)
	return c
}

// Valid reports whether the collider was built from a well-formed soup.
func (c *Collider) Valid() bool {
	return c.valid
}

// TriangleCount returns the number of triangles.
func (c *Collider) TriangleCount() int {
	return len(c.tris)
}

// Bounds returns the bounding box of all vertices.
func (c *Collider) Bounds() Bounds {
	return c.bounds
}

// Triangle returns the vertices of triangle i, for debug highlighting.
func (c *Collider) Triangle(i int) (v0, v1, v2 math.Vec3, ok bool) {
	if i < 0 || i >= len(c.tris) {
		return math.Vec3{}, math.Vec3{}, math.Vec3{}, false
	}
	t := &c.tris[i]
	return t.a, t.b, t.c, true
}

// CheckCollision finds the highest triangle whose surface lies within the
// probe's vertical extent. The hint triangle is tried first and returned
// as soon as it still qualifies.
func (c *Collider) CheckCollision(q Query) Result {
	if !c.valid {
		return Result{Height: NoGround, Index: -1}
	}

	if q.Hint >= 0 && q.Hint < len(c.tris) {
		if h, _, hit := c.testTriangle(q.Hint, q); hit {
			return Result{Height: h, Index: q.Hint}
		}
	}

	best := Result{Height: NoGround, Index: -1}
	lowest := float32(gomath.MaxFloat32)
	seen := false

	for i := range c.tris {
		h, inside, hit := c.testTriangle(i, q)
		if !inside {
			continue
		}
		seen = true
		if h < lowest {
			lowest = h
		}
		// Strict comparison: on equal heights the first triangle wins.
		if hit && (best.Index == -1 || h > best.Height) {
			best = Result{Height: h, Index: i}
		}
	}

	if best.Index == -1 && seen {
		best.Height = lowest
	}
	return best
}

// testTriangle projects the probe onto triangle i's plane. inside reports a
// footprint hit; hit additionally requires the vertical overlap test.
func (c *Collider) testTriangle(i int, q Query) (height float32, inside, hit bool) {
	t := &c.tris[i]
	if t.degenerate {
		return 0, false, false
	}

	d := -t.normal.Dot(t.a)
	dist := -(t.normal.Dot(q.Position) + d)
	projection := q.Position.Add(t.normal.Scale(dist))
	if !projection.IsFinite() {
		return 0, false, false
	}

	height = projection.Y
	inside = math.PointInTriangle(projection, t.a, t.b, t.c)
	if !inside && c.opts.RadiusFootprint && q.Radius > 0 &&
		math.SphereIntersectsTriangle(projection, q.Radius, t.a, t.b, t.c) {
		inside = true
		height = math.ClosestPointOnTriangle(projection, t.a, t.b, t.c).Y
	}
	if !inside {
		return height, false, false
	}

	feet := q.Position.Y - q.Height/2
	head := q.Position.Y + q.Height/2
	eps := c.opts.Hysteresis
	hit = feet <= height+eps && head >= height-eps
	return height, true, hit
}

// GetTriangleNormal returns the unit normal of triangle i following its
// winding. Invalid indices and zero-area triangles yield Up.
func (c *Collider) GetTriangleNormal(i int) math.Vec3 {
	if i < 0 || i >= len(c.tris) || c.tris[i].degenerate {
		return math.Up
	}
	return c.tris[i].normal
}

// GetNearbyTriangles returns, in index order, every non-degenerate triangle
// whose centroid lies within radius of position.
func (c *Collider) GetNearbyTriangles(position math.Vec3, radius float32) []int {
	nearby := make([]int, 0, 8)
	r2 := radius * radius
	for i := range c.tris {
		t := &c.tris[i]
		if t.degenerate {
			continue
		}
		if t.centroid.Sub(position).LengthSquared() <= r2 {
			nearby = append(nearby, i)
		}
	}
	return nearby
}

func vecMin(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
}

func vecMax(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
}

var _ CollisionSource = (*Collider)(nil)
