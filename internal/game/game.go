// Package game implements the interactive and headless main loops.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/arena/internal/config"
	"github.com/Faultbox/arena/internal/engine/camera"
	"github.com/Faultbox/arena/internal/engine/input"
	"github.com/Faultbox/arena/internal/engine/window"
	"github.com/Faultbox/arena/internal/game/world"
	"github.com/Faultbox/arena/internal/logger"
)

// maxFrameDelta caps the step after a stall (window drag, breakpoint).
const maxFrameDelta = 100 * time.Millisecond

// Game is the interactive game instance.
type Game struct {
	config  *config.Config
	running bool
	world   *world.World
	window  *window.Window
	input   *input.Input
	camera  *camera.TopDown

	// overview shows the whole terrain instead of following the player
	overview       bool
	overviewCamera *camera.TopDown
}

// New creates the window and input handler for an interactive run.
func New(cfg *config.Config, w *world.World) (*Game, error) {
	logger.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	g := &Game{
		config: cfg,
		world:  w,
		camera: camera.NewTopDown(cfg.Camera.ViewScale, cfg.Window.Width, cfg.Window.Height),
	}
	g.overviewCamera = camera.NewTopDown(cfg.Camera.ViewScale, cfg.Window.Width, cfg.Window.Height)
	g.overviewCamera.MinScale = 0.01

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.input = input.New(input.DefaultBindings())

	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		// Calculate delta time
		now := time.Now()
		elapsed := min(now.Sub(lastTime), maxFrameDelta)
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			// Quit event received
			g.running = false
			break
		}

		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.camera.Resize(event.Width, event.Height)
				g.overviewCamera.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_TAB && !event.Repeat {
					g.overview = !g.overview
				}
			case input.EventMouseWheel:
				g.camera.HandleZoom(float32(event.WheelY))
			}
		}

		// 2. Update world
		g.world.Step(float32(elapsed.Seconds()), g.input.Character())

		// 3. Render
		g.render()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			snap := g.world.Snapshot()
			g.window.SetTitle(fmt.Sprintf("%s | %d fps | %s (%.2f, %.2f, %.2f)",
				g.config.Window.Title, frameCount, snap.Animation,
				snap.Position.X, snap.Position.Y, snap.Position.Z))
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", elapsed))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("game loop finished", g.world.Snapshot().Fields()...)
	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.window != nil {
		g.window.Close()
	}
}

// RunHeadless steps the world frames times at a fixed timestep, feeding
// input from script, and returns the final snapshot.
func RunHeadless(cfg *config.Config, w *world.World, script *world.Script, frames int) world.Snapshot {
	dt := float32(cfg.Simulation.Timestep.Seconds())

	logger.Info("starting headless run",
		zap.Int("frames", frames),
		zap.Duration("timestep", cfg.Simulation.Timestep),
		zap.Bool("scripted", script != nil))

	for i := range frames {
		w.Step(dt, script.InputAt(i))
	}

	snap := w.Snapshot()
	logger.Info("headless run finished", snap.Fields()...)
	return snap
}
