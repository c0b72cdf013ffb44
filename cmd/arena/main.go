// Package main is the entry point for the Arena character controller.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/arena/internal/assets"
	"github.com/Faultbox/arena/internal/config"
	"github.com/Faultbox/arena/internal/game"
	"github.com/Faultbox/arena/internal/game/world"
	"github.com/Faultbox/arena/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.SavePath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("config written to %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Arena ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("arena error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("arena closed normally")
}

func run(cfg *config.Config) error {
	manager := assets.NewManager("")
	defer manager.Close()

	soup, err := world.LoadTerrain(cfg, manager)
	if err != nil {
		return fmt.Errorf("loading terrain: %w", err)
	}
	w := world.New(cfg, soup)

	if cfg.Simulation.Headless {
		var script *world.Script
		frames := cfg.Simulation.Frames
		if cfg.Simulation.Script != "" {
			script, err = world.LoadScript(cfg.Simulation.Script)
			if err != nil {
				return err
			}
			frames = max(frames, script.Frames())
		}
		game.RunHeadless(cfg, w, script, frames)
		return nil
	}

	// Create and run game
	g, err := game.New(cfg, w)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	defer g.Close()

	return g.Run()
}
