package math

// DegenerateEpsilon is the squared cross-product length below which a
// triangle is treated as having zero area.
const DegenerateEpsilon = 1e-12

// Clamp limits value to [min, max].
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// TriangleNormal returns the unit normal of triangle abc following its
// winding (b-a) x (c-a). ok is false for zero-area triangles.
func TriangleNormal(a, b, c Vec3) (n Vec3, ok bool) {
	cross := b.Sub(a).Cross(c.Sub(a))
	if cross.LengthSquared() < DegenerateEpsilon {
		return Vec3{}, false
	}
	return cross.Normalize(), true
}

// Barycentric returns the barycentric coordinates (u, v, w) of p with
// respect to triangle abc, so that p = u*a + v*b + w*c when p lies in the
// triangle's plane. A degenerate triangle yields (-1, -1, -1).
func Barycentric(p, a, b, c Vec3) Vec3 {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return Vec3{-1, -1, -1}
	}
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	return Vec3{1 - v - w, v, w}
}

// PointInTriangle reports whether p (assumed on the triangle's plane) lies
// inside triangle abc, edges included.
func PointInTriangle(p, a, b, c Vec3) bool {
	bc := Barycentric(p, a, b, c)
	return bc.X >= 0 && bc.Y >= 0 && bc.Z >= 0
}

// ClosestPointOnTriangle returns the point of triangle abc nearest to p.
func ClosestPointOnTriangle(p, a, b, c Vec3) Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Scale(d1 / (d1 - d3)))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Scale(d2 / (d2 - d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		return b.Add(c.Sub(b).Scale((d4 - d3) / ((d4 - d3) + (d5 - d6))))
	}

	// Inside the face region
	denom := va + vb + vc
	if denom == 0 {
		return a
	}
	v := vb / denom
	w := vc / denom
	return a.Add(ab.Scale(v)).Add(ac.Scale(w))
}

// SphereIntersectsTriangle reports whether the sphere touches triangle abc.
func SphereIntersectsTriangle(center Vec3, radius float32, a, b, c Vec3) bool {
	closest := ClosestPointOnTriangle(center, a, b, c)
	return closest.Sub(center).LengthSquared() <= radius*radius
}
