package character

import (
	gomath "math"

	"github.com/Faultbox/arena/pkg/math"
)

const degToRad = gomath.Pi / 180

// updateFacing rotates the facing vector around the vertical axis while the
// look button is held.
func (p *Player) updateFacing(dt float32, in Input) {
	if !in.Look || in.LookDelta.X == 0 {
		return
	}
	s := &p.state

	degrees := in.LookDelta.X * p.params.MouseSensitivity * dt
	q := math.QuatFromAxisAngle(math.Up, -degrees*degToRad)
	facing := q.Rotate(s.Facing).Normalize()
	if facing == (math.Vec3{}) || !facing.IsFinite() {
		return
	}
	s.Facing = facing
}

// relativeMove turns the local move vector into world space using the facing
// direction, and eases the heading toward the direction of travel.
func (p *Player) relativeMove(dt float32, moveDir math.Vec3) math.Vec3 {
	s := &p.state
	relative := math.RotateY(-FacingAngle(s.Facing)).TransformVec3(moveDir)

	if moveDir != (math.Vec3{}) {
		target := HeadingOf(relative)
		s.RotationHorizontal = SmoothHeading(s.RotationHorizontal, target, p.params.TurnRate*dt)
	}
	return relative
}

// updateVelocity sets or accumulates horizontal velocity from the relative
// move, then enforces the horizontal speed cap.
func (p *Player) updateVelocity(dt float32, relative math.Vec3) {
	s := &p.state

	if s.IsGrounded {
		// No inertia on the ground
		s.Velocity.X = relative.X * s.MoveSpeed
		s.Velocity.Z = relative.Z * s.MoveSpeed
		if p.params.ProjectOnGround && s.GroundNormal != (math.Vec3{}) {
			s.Velocity = math.Vec3{X: s.Velocity.X, Z: s.Velocity.Z}.ProjectOnPlane(s.GroundNormal)
		}
	} else {
		if relative != (math.Vec3{}) {
			s.Velocity.X += relative.X * s.MoveSpeed * p.params.AirControl * dt
			s.Velocity.Z += relative.Z * s.MoveSpeed * p.params.AirControl * dt
		}
		// Exponential decay, independent of frame rate
		damp := float32(gomath.Pow(float64(p.params.AirFriction), float64(dt)))
		s.Velocity.X *= damp
		s.Velocity.Z *= damp
	}

	maxSpeed := s.MoveSpeed * p.params.SpeedCapMultiplier
	speed := s.Velocity.XZ().Length()
	if speed > maxSpeed {
		scale := maxSpeed / speed
		s.Velocity.X *= scale
		s.Velocity.Z *= scale
	}
}

// applyGravity accelerates the player downward while airborne, limited to
// the terminal fall speed.
func (p *Player) applyGravity(dt float32) {
	s := &p.state
	if s.IsGrounded {
		return
	}
	s.Velocity.Y += p.params.Gravity * dt
	if s.Velocity.Y < p.params.MaxFallSpeed {
		s.Velocity.Y = p.params.MaxFallSpeed
	}
}
