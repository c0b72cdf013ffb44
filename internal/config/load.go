package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		UserConfigPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Arena")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Arena")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "arena")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "arena")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate reports settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player.radius must be positive, got %v", c.Player.Radius))
	}
	if c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player.height must be positive, got %v", c.Player.Height))
	}
	if c.Player.MaxSlopeDegrees < 0 || c.Player.MaxSlopeDegrees > 90 {
		errs = append(errs, fmt.Errorf("player.max_slope_degrees must be within [0, 90], got %v", c.Player.MaxSlopeDegrees))
	}
	if c.Physics.MaxFallSpeed > 0 {
		errs = append(errs, fmt.Errorf("physics.max_fall_speed must not be positive, got %v", c.Physics.MaxFallSpeed))
	}
	if c.Physics.AirFriction < 0 || c.Physics.AirFriction > 1 {
		errs = append(errs, fmt.Errorf("physics.air_friction must be within [0, 1], got %v", c.Physics.AirFriction))
	}
	if c.Terrain.MapWidth <= 0 || c.Terrain.MapDepth <= 0 {
		errs = append(errs, fmt.Errorf("terrain map size must be positive, got %vx%v", c.Terrain.MapWidth, c.Terrain.MapDepth))
	}
	if c.Terrain.Hysteresis < 0 {
		errs = append(errs, fmt.Errorf("terrain.hysteresis must not be negative, got %v", c.Terrain.Hysteresis))
	}
	if c.Simulation.Timestep <= 0 {
		errs = append(errs, fmt.Errorf("simulation.timestep must be positive, got %v", c.Simulation.Timestep))
	}
	return errors.Join(errs...)
}
