package character

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/arena/internal/engine/terrain"
	"github.com/Faultbox/arena/internal/logger"
	"github.com/Faultbox/arena/pkg/math"
)

// resolveGround queries the terrain at the candidate position and settles
// grounded, sliding or airborne state, adjusting newPosition and velocity.
func (p *Player) resolveGround(dt float32, newPosition *math.Vec3, ground terrain.CollisionSource) {
	s := &p.state
	s.IsSliding = false

	if ground == nil {
		s.GroundHeight = terrain.NoGround
		s.CollidingTriangleIndex = -1
		s.LastCollidingTriangleIndex = -1
		p.leaveGround(dt)
		return
	}

	res := ground.CheckCollision(terrain.Query{
		Position: *newPosition,
		Radius:   s.Radius,
		Height:   s.Height,
		Hint:     s.LastCollidingTriangleIndex,
	})
	s.GroundHeight = res.Height
	s.CollidingTriangleIndex = res.Index
	s.LastCollidingTriangleIndex = res.Index

	if !res.Grounded() {
		p.leaveGround(dt)
		p.traceGround(0)
		return
	}

	contact := orientUp(ground.GetTriangleNormal(res.Index))
	normal := p.contactNormal(ground, res.Index, contact, *newPosition)
	s.GroundNormal = normal

	// Climb limit uses the steeper of the contact triangle and the averaged patch
	surface := normal
	if contact.Dot(math.Up) < normal.Dot(math.Up) {
		surface = contact
	}
	slope := surface.Dot(math.Up)
	feet := newPosition.Y - s.Height/2
	distance := feet - res.Height

	if slope < p.params.MaxSlopeCos {
		if distance <= p.params.SnapDistance {
			p.slide(dt, newPosition, surface, contact, slope, res.Height)
		}
		p.leaveGround(dt)
		p.traceGround(distance)
		return
	}

	switch {
	case distance <= p.params.SnapDistance && (s.Velocity.Y <= 0 || (s.IsGrounded && !s.IsJumping)):
		newPosition.Y = res.Height + s.Height/2
		s.Velocity.Y = 0
		p.land()
	case distance < 0:
		// Inside the ground: push out
		newPosition.Y = res.Height + s.Height/2
		if s.Velocity.Y < 0 {
			s.Velocity.Y = 0
		}
		p.land()
	default:
		p.leaveGround(dt)
	}
	p.traceGround(distance)
}

// contactNormal averages the up-oriented normals around the contact point to
// smooth out tessellation noise on curved slopes.
func (p *Player) contactNormal(ground terrain.CollisionSource, index int, contact, position math.Vec3) math.Vec3 {
	radius := p.params.NormalSampleRadius
	if radius <= 0 {
		return contact
	}

	sum := contact
	for _, i := range ground.GetNearbyTriangles(position, radius) {
		if i == index {
			continue
		}
		sum = sum.Add(orientUp(ground.GetTriangleNormal(i)))
	}
	avg := sum.Normalize()
	if avg == (math.Vec3{}) || !avg.IsFinite() {
		return contact
	}
	return avg
}

// slide redirects velocity down a slope too steep to stand on. Cross-slope
// motion is damped more the steeper the slope; the downhill component grows
// with the share of gravity along the surface.
func (p *Player) slide(dt float32, newPosition *math.Vec3, normal, contact math.Vec3, slope, groundHeight float32) {
	s := &p.state

	downhill := math.Up.Negate().ProjectOnPlane(normal).Normalize()
	if downhill == (math.Vec3{}) {
		return
	}

	along := s.Velocity.Dot(downhill)
	lateral := s.Velocity.ProjectOnPlane(normal).Sub(downhill.Scale(along))
	if along < 0 {
		along = 0
	}
	along += -p.params.Gravity * (1 - slope) * p.params.SlideAcceleration * dt

	s.Velocity = lateral.Scale(p.params.SlideDamping * slope).Add(downhill.Scale(along))

	// Ground height is measured along the contact normal; recover the
	// surface height straight below the probe.
	surfaceY := groundHeight
	if contact.Y > 0 {
		surfaceY = newPosition.Y - (newPosition.Y-groundHeight)/(contact.Y*contact.Y)
	}
	if minY := surfaceY + s.Height/2 + p.params.SlideOffset; newPosition.Y < minY {
		newPosition.Y = minY
	}
	s.IsSliding = true
}

func (p *Player) land() {
	s := &p.state
	s.IsGrounded = true
	s.IsJumping = false
	s.TimeSinceGrounded = 0
}

func (p *Player) leaveGround(dt float32) {
	s := &p.state
	s.IsGrounded = false
	s.TimeSinceGrounded += dt
}

// tryJump starts a jump when grounded or within the coyote window.
func (p *Player) tryJump(in Input) {
	if !in.Jump {
		return
	}
	s := &p.state
	if !s.IsGrounded && s.TimeSinceGrounded > p.params.CoyoteTime {
		logger.Debug("jump rejected", zap.Float32("timeSinceGrounded", s.TimeSinceGrounded))
		return
	}

	s.Velocity.Y = s.JumpSpeed
	s.IsJumping = true
	s.IsGrounded = false
	s.TimeSinceGrounded = neverGrounded
}

func (p *Player) traceGround(distance float32) {
	if !logger.Enabled(zapcore.DebugLevel) {
		return
	}
	s := &p.state
	logger.Debug("ground resolved",
		zap.Float32("velocityY", s.Velocity.Y),
		zap.Bool("grounded", s.IsGrounded),
		zap.Bool("jumping", s.IsJumping),
		zap.Bool("sliding", s.IsSliding),
		zap.Float32("distanceToGround", distance),
		zap.Int("triangle", s.CollidingTriangleIndex),
	)
}

// orientUp flips a normal into the upper hemisphere; triangle winding in the
// soup is not consistent.
func orientUp(n math.Vec3) math.Vec3 {
	if n.Y < 0 {
		return n.Negate()
	}
	return n
}
