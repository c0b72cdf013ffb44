// Package character provides the player controller: input-relative movement,
// ground resolution against terrain, jumping and locomotion labels.
package character

import (
	gomath "math"

	"github.com/Faultbox/arena/pkg/math"
)

// Input is one frame's control snapshot.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	// Jump is edge-triggered: true only on the frame the button went down.
	Jump bool

	// Look is true while the look button is held; LookDelta is the pointer
	// motion accumulated since the previous frame.
	Look      bool
	LookDelta math.Vec2
}

// MoveDirection returns the raw local move vector: +X forward, +Z right.
// Each axis is in {-1, 0, 1}; diagonals are not normalized.
func (in Input) MoveDirection() math.Vec3 {
	var dir math.Vec3
	if in.Forward {
		dir.X += 1
	}
	if in.Back {
		dir.X -= 1
	}
	if in.Left {
		dir.Z -= 1
	}
	if in.Right {
		dir.Z += 1
	}
	return dir
}

// Params holds the actor constants and physics tuning for one player.
type Params struct {
	// Spawn
	SpawnPosition math.Vec3
	SpawnFacing   math.Vec3
	SpawnRotation float32 // radians

	// Body
	Radius    float32
	Height    float32
	MoveSpeed float32 // units per second
	JumpSpeed float32 // initial upward velocity

	// Physics
	Gravity            float32 // units/s², negative is down
	MaxFallSpeed       float32 // terminal vertical velocity, negative
	AirControl         float32 // fraction of MoveSpeed applied per second in the air
	AirFriction        float32 // horizontal velocity kept after one second airborne
	SpeedCapMultiplier float32 // horizontal speed cap = MoveSpeed * this
	TurnRate           float32 // heading interpolation gain per second

	// Look
	MouseSensitivity float32 // degrees per pointer unit per second

	// Ground resolution
	SnapDistance       float32 // max feet-to-ground gap that still snaps down
	MaxSlopeCos        float32 // cosine of the steepest climbable slope
	NormalSampleRadius float32 // contact normal averaging radius, 0 disables
	ProjectOnGround    bool    // remove the normal component of grounded velocity
	CoyoteTime         float32 // seconds after leaving ground a jump is still allowed

	// Sliding on slopes steeper than MaxSlopeCos
	SlideAcceleration float32 // scales the downhill gravity component
	SlideDamping      float32 // fraction of cross-slope velocity kept per frame
	SlideOffset       float32 // clearance kept between feet and a steep surface

	// Commit
	MovementThreshold float32 // smaller displacements are not committed
	VelocityThreshold float32 // smaller velocity components snap to zero
	WalkThreshold     float32 // ground speed above which the label is walk

	// World bounds, centered on the origin
	MapWidth float32
	MapDepth float32
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		SpawnPosition: math.Vec3{X: 0, Y: 5, Z: 0},
		SpawnFacing:   math.Vec3{X: 1, Y: 0, Z: 0},
		SpawnRotation: 0,

		Radius:    0.5,
		Height:    1.0,
		MoveSpeed: 2.0,
		JumpSpeed: 5.0,

		Gravity:            -9.8,
		MaxFallSpeed:       -20.0,
		AirControl:         0.3,
		AirFriction:        0.5,
		SpeedCapMultiplier: 1.5,
		TurnRate:           10.0,

		MouseSensitivity: 150.0,

		SnapDistance:       0.1,
		MaxSlopeCos:        float32(gomath.Cos(gomath.Pi / 4)),
		NormalSampleRadius: 1.0,
		ProjectOnGround:    true,
		CoyoteTime:         0.1,

		SlideAcceleration: 1.0,
		SlideDamping:      0.9,
		SlideOffset:       0.02,

		MovementThreshold: 0.001,
		VelocityThreshold: 0.01,
		WalkThreshold:     0.1,

		MapWidth: 100,
		MapDepth: 100,
	}
}

// Locomotion is the movement label consumed by the animation layer.
type Locomotion string

// Locomotion labels, matching the clip names of the player model.
const (
	LocomotionIdle      Locomotion = "idle"
	LocomotionWalk      Locomotion = "walk"
	LocomotionJumpStart Locomotion = "jump_start"
	LocomotionJumpLand  Locomotion = "jump_land"
)

// State is the player's kinematic state. It is written only by Player.Update.
type State struct {
	Position math.Vec3
	Velocity math.Vec3
	Facing   math.Vec3
	Movement math.Vec3 // displacement committed last frame

	RotationHorizontal float32 // smoothed heading, radians in [0, 2π)

	Radius    float32
	Height    float32
	MoveSpeed float32
	JumpSpeed float32

	IsGrounded bool
	IsJumping  bool
	IsSliding  bool

	GroundHeight               float32
	GroundNormal               math.Vec3
	CollidingTriangleIndex     int
	LastCollidingTriangleIndex int

	// TimeSinceGrounded is +Inf after a jump until the next landing, so the
	// coyote window cannot be reused mid-air.
	TimeSinceGrounded float32

	Animation Locomotion
}
