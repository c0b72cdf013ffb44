package game

import (
	"github.com/Faultbox/arena/internal/engine/camera"
	"github.com/Faultbox/arena/internal/engine/window"
)

var (
	colorBackground = window.Color{R: 18, G: 20, B: 24, A: 255}
	colorTriangle   = window.Color{R: 70, G: 76, B: 88, A: 255}
	colorContact    = window.Color{R: 240, G: 200, B: 60, A: 255}
	colorPlayer     = window.Color{R: 80, G: 200, B: 120, A: 255}
	colorAirborne   = window.Color{R: 90, G: 150, B: 240, A: 255}
	colorFacing     = window.Color{R: 230, G: 80, B: 70, A: 255}
	colorGround     = window.Color{R: 255, G: 255, B: 255, A: 255}
)

// render draws the terrain around the player, the contact triangle and the
// player's collision box.
func (g *Game) render() {
	w := g.window
	player := g.world.Player()
	collider := g.world.Collider()
	s := player.State()

	cam := g.camera
	cam.Follow(s.Position)
	nearby := collider.GetNearbyTriangles(s.Position, cam.Radius())
	if g.overview {
		b := collider.Bounds()
		cam = g.overviewCamera
		cam.FitToBounds(b.Min, b.Max)
		nearby = collider.GetNearbyTriangles(cam.Center, cam.Radius())
	}

	w.Clear(colorBackground)

	for _, i := range nearby {
		g.drawTriangle(cam, i, colorTriangle)
	}
	if s.CollidingTriangleIndex >= 0 {
		g.drawTriangle(cam, s.CollidingTriangleIndex, colorContact)
	}

	box := player.Bounds()
	x0, y0 := cam.ToScreen(box.Min)
	x1, y1 := cam.ToScreen(box.Max)
	body := colorPlayer
	if !s.IsGrounded {
		body = colorAirborne
	}
	w.DrawRect(x0, y0, x1-x0, y1-y0, body)

	cx, cy := cam.ToScreen(s.Position)
	fx, fy := cam.ToScreen(s.Position.Add(s.Facing.Scale(s.Radius * 2)))
	w.DrawLine(cx, cy, fx, fy, colorFacing)

	if p, ok := player.GroundPoint(); ok {
		gx, gy := cam.ToScreen(p)
		w.FillRect(gx-1, gy-1, 3, 3, colorGround)
	}

	w.Present()
}

func (g *Game) drawTriangle(cam *camera.TopDown, i int, c window.Color) {
	a, b, d, ok := g.world.Collider().Triangle(i)
	if !ok {
		return
	}
	ax, ay := cam.ToScreen(a)
	bx, by := cam.ToScreen(b)
	dx, dy := cam.ToScreen(d)
	g.window.DrawLine(ax, ay, bx, by, c)
	g.window.DrawLine(bx, by, dx, dy, c)
	g.window.DrawLine(dx, dy, ax, ay, c)
}
