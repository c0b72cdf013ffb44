package character

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/arena/internal/logger"
	"github.com/Faultbox/arena/pkg/math"
)

// LocomotionFor derives the movement label from controller state. Airborne
// states take priority; on the ground the label depends on speed along the
// ground plane so vertical snapping noise does not read as walking.
func LocomotionFor(s State, walkThreshold float32) Locomotion {
	if !s.IsGrounded || s.IsJumping {
		if s.Velocity.Y > 0 {
			return LocomotionJumpStart
		}
		return LocomotionJumpLand
	}

	normal := s.GroundNormal
	if normal == (math.Vec3{}) {
		normal = math.Up
	}
	if s.Velocity.ProjectOnPlane(normal).Length() > walkThreshold {
		return LocomotionWalk
	}
	return LocomotionIdle
}

// Clip describes one looping animation.
type Clip struct {
	FrameCount int
	Speed      float32 // frames per second, 0 uses the player default
}

// ClipPlayer advances the frame counter of the clip selected by the current
// locomotion label.
type ClipPlayer struct {
	clips        map[Locomotion]Clip
	defaultSpeed float32

	current Locomotion
	time    float32 // seconds into the current clip
}

// NewClipPlayer creates a clip player. defaultSpeed is in frames per second.
func NewClipPlayer(clips map[Locomotion]Clip, defaultSpeed float32) *ClipPlayer {
	return &ClipPlayer{
		clips:        clips,
		defaultSpeed: defaultSpeed,
	}
}

// Current returns the label of the clip being played.
func (c *ClipPlayer) Current() Locomotion {
	return c.current
}

// Update advances the clip for label by dt seconds and returns the frame to
// display. Switching label restarts from frame 0. An unknown label leaves the
// player untouched and returns false.
func (c *ClipPlayer) Update(label Locomotion, dt float32) (int, bool) {
	clip, ok := c.clips[label]
	if !ok {
		logger.Error("animation not found", zap.String("label", string(label)))
		return 0, false
	}

	if label != c.current {
		c.current = label
		c.time = 0
	}
	if clip.FrameCount <= 0 {
		return 0, true
	}

	speed := clip.Speed
	if speed <= 0 {
		speed = c.defaultSpeed
	}
	if dt > 0 {
		c.time += dt
	}
	if speed <= 0 {
		return 0, true
	}

	// Keep the clock within one loop so precision does not drift
	period := float64(clip.FrameCount) / float64(speed)
	c.time = float32(gomath.Mod(float64(c.time), period))

	frame := int(float64(c.time) * float64(speed))
	if frame >= clip.FrameCount {
		frame = clip.FrameCount - 1
	}
	return frame, true
}
