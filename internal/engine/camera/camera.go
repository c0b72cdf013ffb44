// Package camera provides the top-down debug camera.
package camera

import (
	"github.com/Faultbox/arena/pkg/math"
)

// TopDown looks straight down at the XZ plane, centered on a target.
// Screen +X is world +X and screen +Y is world +Z.
type TopDown struct {
	Center math.Vec3

	// Scale is pixels per world unit
	Scale    float32
	MinScale float32
	MaxScale float32

	Width  int
	Height int

	ZoomSensitivity float32
}

// NewTopDown creates a camera for a viewport of the given size.
func NewTopDown(scale float32, width, height int) *TopDown {
	return &TopDown{
		Scale:           scale,
		MinScale:        1,
		MaxScale:        200,
		Width:           width,
		Height:          height,
		ZoomSensitivity: 0.1,
	}
}

// Follow centers the camera on target.
func (c *TopDown) Follow(target math.Vec3) {
	c.Center = target
}

// Resize updates the viewport size.
func (c *TopDown) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

// HandleZoom updates the scale based on scroll wheel delta.
func (c *TopDown) HandleZoom(delta float32) {
	c.Scale += delta * c.Scale * c.ZoomSensitivity
	c.Scale = math.Clamp(c.Scale, c.MinScale, c.MaxScale)
}

// ToScreen projects a world point to viewport pixels.
func (c *TopDown) ToScreen(p math.Vec3) (int32, int32) {
	x := float32(c.Width)/2 + (p.X-c.Center.X)*c.Scale
	y := float32(c.Height)/2 + (p.Z-c.Center.Z)*c.Scale
	return int32(x), int32(y)
}

// Radius returns the world distance from the center to a viewport corner.
func (c *TopDown) Radius() float32 {
	if c.Scale <= 0 {
		return 0
	}
	half := math.Vec2{X: float32(c.Width) / 2, Y: float32(c.Height) / 2}
	return half.Length() / c.Scale
}

// FitToBounds centers on the XZ extent of a box and picks the scale that
// shows all of it.
func (c *TopDown) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)

	sizeX := hi.X - lo.X
	sizeZ := hi.Z - lo.Z
	if sizeX <= 0 || sizeZ <= 0 || c.Width <= 0 || c.Height <= 0 {
		return
	}
	scale := float32(c.Width) / sizeX
	if s := float32(c.Height) / sizeZ; s < scale {
		scale = s
	}
	c.Scale = math.Clamp(scale, c.MinScale, c.MaxScale)
}
