package character

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/arena/internal/engine/terrain"
	"github.com/Faultbox/arena/internal/logger"
	"github.com/Faultbox/arena/pkg/math"
)

var neverGrounded = float32(gomath.Inf(1))

// Player is a capsule-shaped character driven by per-frame input.
type Player struct {
	params Params
	state  State
}

// NewPlayer creates a player at the spawn point described by p. The player
// starts airborne and settles onto the terrain during the first updates.
func NewPlayer(p Params) *Player {
	facing := p.SpawnFacing.Normalize()
	if facing == (math.Vec3{}) {
		facing = math.Vec3{X: 1}
	}

	return &Player{
		params: p,
		state: State{
			Position:                   p.SpawnPosition,
			Facing:                     facing,
			RotationHorizontal:         WrapAngle(p.SpawnRotation),
			Radius:                     p.Radius,
			Height:                     p.Height,
			MoveSpeed:                  p.MoveSpeed,
			JumpSpeed:                  p.JumpSpeed,
			GroundHeight:               terrain.NoGround,
			GroundNormal:               math.Up,
			CollidingTriangleIndex:     -1,
			LastCollidingTriangleIndex: -1,
			TimeSinceGrounded:          neverGrounded,
			Animation:                  LocomotionJumpLand,
		},
	}
}

// State returns a copy of the current kinematic state.
func (p *Player) State() State {
	return p.state
}

// Params returns the tuning the player was created with.
func (p *Player) Params() Params {
	return p.params
}

// GroundPoint returns the point under the player's feet on the last resolved
// ground, or false when no ground was found.
func (p *Player) GroundPoint() (math.Vec3, bool) {
	if p.state.GroundHeight == terrain.NoGround {
		return math.Vec3{}, false
	}
	return math.Vec3{X: p.state.Position.X, Y: p.state.GroundHeight, Z: p.state.Position.Z}, true
}

// Bounds returns the axis-aligned box enclosing the player's capsule.
func (p *Player) Bounds() terrain.Bounds {
	s := &p.state
	half := math.Vec3{X: s.Radius, Y: s.Height / 2, Z: s.Radius}
	return terrain.Bounds{Min: s.Position.Sub(half), Max: s.Position.Add(half)}
}

// Update advances the player by dt seconds. ground may be nil, in which case
// the player falls freely.
func (p *Player) Update(dt float32, in Input, ground terrain.CollisionSource) {
	if !(dt > 0) || gomath.IsInf(float64(dt), 0) {
		logger.Debug("player update skipped", zap.Float32("dt", dt))
		return
	}
	s := &p.state

	p.updateFacing(dt, in)

	relative := p.relativeMove(dt, in.MoveDirection())
	p.updateVelocity(dt, relative)
	p.applyGravity(dt)

	newPosition := s.Position.Add(s.Velocity.Scale(dt))
	if !newPosition.IsFinite() {
		logger.Warn("player position diverged, discarding frame",
			zap.Float32("x", newPosition.X),
			zap.Float32("y", newPosition.Y),
			zap.Float32("z", newPosition.Z))
		s.Velocity = math.Vec3{}
		s.Movement = math.Vec3{}
		return
	}

	p.resolveGround(dt, &newPosition, ground)
	p.tryJump(in)
	p.commit(newPosition)

	s.Animation = LocomotionFor(*s, p.params.WalkThreshold)
}

// commit moves the player to newPosition, clamps it to the map and cleans up
// velocity noise.
func (p *Player) commit(newPosition math.Vec3) {
	s := &p.state

	s.Movement = newPosition.Sub(s.Position)
	if s.Movement.Length() > p.params.MovementThreshold {
		s.Position = newPosition
	} else {
		if s.IsGrounded {
			s.Position.Y = newPosition.Y
		}
		s.Movement = math.Vec3{}
	}

	halfW := p.params.MapWidth / 2
	halfD := p.params.MapDepth / 2
	s.Position.X = math.Clamp(s.Position.X, -halfW, halfW)
	s.Position.Z = math.Clamp(s.Position.Z, -halfD, halfD)

	s.Velocity.X = snapZero(s.Velocity.X, p.params.VelocityThreshold)
	s.Velocity.Y = snapZero(s.Velocity.Y, p.params.VelocityThreshold)
	s.Velocity.Z = snapZero(s.Velocity.Z, p.params.VelocityThreshold)
}

func snapZero(v, threshold float32) float32 {
	if v > -threshold && v < threshold {
		return 0
	}
	return v
}
