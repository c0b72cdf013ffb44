package world

import (
	gomath "math"

	"github.com/Faultbox/arena/internal/config"
	"github.com/Faultbox/arena/internal/engine/character"
	"github.com/Faultbox/arena/internal/engine/terrain"
	"github.com/Faultbox/arena/pkg/math"
)

// PlayerParams maps the player, physics, camera and terrain sections onto
// controller tuning.
func PlayerParams(cfg *config.Config) character.Params {
	p := character.DefaultParams()
	pc := cfg.Player
	ph := cfg.Physics

	p.SpawnPosition = vec3(pc.SpawnPosition)
	p.SpawnFacing = vec3(pc.SpawnFacing)
	p.SpawnRotation = pc.SpawnRotation * gomath.Pi / 180

	p.Radius = pc.Radius
	p.Height = pc.Height
	p.MoveSpeed = pc.MoveSpeed
	p.JumpSpeed = pc.JumpSpeed

	p.Gravity = ph.Gravity
	p.MaxFallSpeed = ph.MaxFallSpeed
	p.AirControl = ph.AirControl
	p.AirFriction = ph.AirFriction
	p.SpeedCapMultiplier = ph.SpeedCapMultiplier
	p.TurnRate = ph.TurnRate

	p.MouseSensitivity = cfg.Camera.MouseSensitivity

	p.SnapDistance = pc.SnapDistance
	p.MaxSlopeCos = float32(gomath.Cos(float64(pc.MaxSlopeDegrees) * gomath.Pi / 180))
	p.NormalSampleRadius = pc.NormalSampling
	p.ProjectOnGround = pc.ProjectOnGround
	p.CoyoteTime = float32(pc.CoyoteTime.Seconds())

	p.SlideAcceleration = ph.SlideAcceleration
	p.SlideDamping = ph.SlideDamping
	p.SlideOffset = ph.SlideOffset

	p.MovementThreshold = pc.MovementThreshold
	p.VelocityThreshold = pc.VelocityThreshold
	p.WalkThreshold = pc.WalkThreshold

	p.MapWidth = cfg.Terrain.MapWidth
	p.MapDepth = cfg.Terrain.MapDepth
	return p
}

// ColliderOptions maps the terrain section onto collider options.
func ColliderOptions(cfg *config.Config) terrain.Options {
	return terrain.Options{
		Hysteresis:      cfg.Terrain.Hysteresis,
		RadiusFootprint: cfg.Terrain.RadiusFootprint,
	}
}

// Clips maps the animation clip table onto locomotion labels.
func Clips(cfg *config.Config) map[character.Locomotion]character.Clip {
	clips := make(map[character.Locomotion]character.Clip, len(cfg.Animation.Clips))
	for name, c := range cfg.Animation.Clips {
		clips[character.Locomotion(name)] = character.Clip{FrameCount: c.Frames, Speed: c.Speed}
	}
	return clips
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
