// Package world ties the terrain collider, the player and its animation
// playback together behind a single per-frame step.
package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/arena/internal/config"
	"github.com/Faultbox/arena/internal/engine/character"
	"github.com/Faultbox/arena/internal/engine/terrain"
	"github.com/Faultbox/arena/internal/logger"
	"github.com/Faultbox/arena/pkg/math"
)

// World owns the read-only terrain collider and the player moving over it.
type World struct {
	collider *terrain.Collider
	player   *character.Player
	clips    *character.ClipPlayer

	frame     int
	elapsed   float32
	animFrame int
	label     character.Locomotion
}

// New builds a world from the terrain triangle soup and the player settings
// in cfg.
func New(cfg *config.Config, soup []math.Vec3) *World {
	w := &World{
		collider: terrain.NewCollider(soup, ColliderOptions(cfg)),
		player:   character.NewPlayer(PlayerParams(cfg)),
		clips:    character.NewClipPlayer(Clips(cfg), cfg.Animation.DefaultSpeed),
	}
	w.label = w.player.State().Animation

	logger.Info("world created",
		zap.Int("triangles", w.collider.TriangleCount()),
		zap.Bool("colliderValid", w.collider.Valid()),
		zap.Float32("spawnY", cfg.Player.SpawnPosition[1]))
	return w
}

// Step advances the simulation by dt seconds with the given input.
func (w *World) Step(dt float32, in character.Input) {
	w.player.Update(dt, in, w.collider)

	s := w.player.State()
	if s.Animation != w.label {
		logger.Debug("locomotion changed",
			zap.Int("frame", w.frame),
			zap.String("from", string(w.label)),
			zap.String("to", string(s.Animation)))
		w.label = s.Animation
	}
	if frame, ok := w.clips.Update(s.Animation, dt); ok {
		w.animFrame = frame
	}

	w.frame++
	if dt > 0 {
		w.elapsed += dt
	}
}

// Player returns the simulated player.
func (w *World) Player() *character.Player {
	return w.player
}

// Collider returns the terrain collider.
func (w *World) Collider() *terrain.Collider {
	return w.collider
}

// Frame returns the number of steps taken.
func (w *World) Frame() int {
	return w.frame
}

// AnimationFrame returns the current frame of the playing clip.
func (w *World) AnimationFrame() int {
	return w.animFrame
}

// Snapshot is a loggable summary of the world after a step.
type Snapshot struct {
	Frame     int
	Elapsed   float32
	Position  math.Vec3
	Velocity  math.Vec3
	Grounded  bool
	Jumping   bool
	Sliding   bool
	Triangle  int
	Animation character.Locomotion
	AnimFrame int
}

// Snapshot captures the current state.
func (w *World) Snapshot() Snapshot {
	s := w.player.State()
	return Snapshot{
		Frame:     w.frame,
		Elapsed:   w.elapsed,
		Position:  s.Position,
		Velocity:  s.Velocity,
		Grounded:  s.IsGrounded,
		Jumping:   s.IsJumping,
		Sliding:   s.IsSliding,
		Triangle:  s.CollidingTriangleIndex,
		Animation: s.Animation,
		AnimFrame: w.animFrame,
	}
}

// Fields returns the snapshot as structured log fields.
func (s Snapshot) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("frame", s.Frame),
		zap.Float32("elapsed", s.Elapsed),
		zap.Float32("x", s.Position.X),
		zap.Float32("y", s.Position.Y),
		zap.Float32("z", s.Position.Z),
		zap.Float32("vy", s.Velocity.Y),
		zap.Bool("grounded", s.Grounded),
		zap.Bool("jumping", s.Jumping),
		zap.Bool("sliding", s.Sliding),
		zap.Int("triangle", s.Triangle),
		zap.String("animation", string(s.Animation)),
		zap.Int("animFrame", s.AnimFrame),
	}
}
