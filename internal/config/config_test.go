package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test player defaults
	if cfg.Player.SpawnPosition != [3]float32{0, 5, 0} {
		t.Errorf("expected spawn (0,5,0), got %v", cfg.Player.SpawnPosition)
	}
	if cfg.Player.Radius != 0.5 || cfg.Player.Height != 1.0 {
		t.Errorf("expected radius 0.5 height 1, got %v/%v", cfg.Player.Radius, cfg.Player.Height)
	}
	if cfg.Player.CoyoteTime != 100*time.Millisecond {
		t.Errorf("expected coyote time 100ms, got %v", cfg.Player.CoyoteTime)
	}

	// Test physics defaults
	if cfg.Physics.Gravity != -9.8 {
		t.Errorf("expected gravity -9.8, got %f", cfg.Physics.Gravity)
	}
	if cfg.Physics.MaxFallSpeed != -20 {
		t.Errorf("expected max fall speed -20, got %f", cfg.Physics.MaxFallSpeed)
	}

	// Test terrain defaults
	if cfg.Terrain.Hysteresis != 0.05 {
		t.Errorf("expected hysteresis 0.05, got %f", cfg.Terrain.Hysteresis)
	}
	if cfg.Terrain.RadiusFootprint {
		t.Error("expected radius footprint to be off by default")
	}
	if cfg.Terrain.Model != "" {
		t.Errorf("expected no terrain model, got %s", cfg.Terrain.Model)
	}

	// Test simulation defaults
	if cfg.Simulation.Timestep != time.Second/60 {
		t.Errorf("expected 60Hz timestep, got %v", cfg.Simulation.Timestep)
	}
	if cfg.Simulation.Headless {
		t.Error("expected headless to be false by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
player:
  spawn_position: [1, 10, -2]
  move_speed: 3.5
  coyote_time: 150ms

physics:
  gravity: -20
  air_friction: 0.25

terrain:
  model: "levels/canyon.glb"
  radius_footprint: true
  procedural:
    shape: hills

animation:
  clips:
    walk:
      frames: 24
      speed: 48

simulation:
  timestep: 10ms
  frames: 600
  headless: true
  script: "walk.yaml"

logging:
  level: "debug"
  log_file: "arena.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Player.SpawnPosition != [3]float32{1, 10, -2} {
		t.Errorf("expected spawn (1,10,-2), got %v", cfg.Player.SpawnPosition)
	}
	if cfg.Player.MoveSpeed != 3.5 {
		t.Errorf("expected move speed 3.5, got %f", cfg.Player.MoveSpeed)
	}
	if cfg.Player.CoyoteTime != 150*time.Millisecond {
		t.Errorf("expected coyote time 150ms, got %v", cfg.Player.CoyoteTime)
	}
	if cfg.Player.Height != 1.0 {
		t.Errorf("unset fields should keep defaults, height got %f", cfg.Player.Height)
	}

	if cfg.Physics.Gravity != -20 {
		t.Errorf("expected gravity -20, got %f", cfg.Physics.Gravity)
	}

	if cfg.Terrain.Model != "levels/canyon.glb" {
		t.Errorf("expected terrain model levels/canyon.glb, got %s", cfg.Terrain.Model)
	}
	if !cfg.Terrain.RadiusFootprint {
		t.Error("expected radius footprint to be true")
	}
	if cfg.Terrain.Procedural.Shape != "hills" || cfg.Terrain.Procedural.TilesX != 50 {
		t.Errorf("expected hills with default tiles, got %+v", cfg.Terrain.Procedural)
	}

	if clip := cfg.Animation.Clips["walk"]; clip.Frames != 24 || clip.Speed != 48 {
		t.Errorf("expected walk clip 24 frames at 48fps, got %+v", clip)
	}
	if _, ok := cfg.Animation.Clips["idle"]; !ok {
		t.Error("default clips should survive a partial clip table")
	}

	if cfg.Simulation.Timestep != 10*time.Millisecond {
		t.Errorf("expected timestep 10ms, got %v", cfg.Simulation.Timestep)
	}
	if !cfg.Simulation.Headless || cfg.Simulation.Frames != 600 || cfg.Simulation.Script != "walk.yaml" {
		t.Errorf("unexpected simulation config %+v", cfg.Simulation)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "arena.log" {
		t.Errorf("expected log file 'arena.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
player:
  radius: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero radius", func(c *Config) { c.Player.Radius = 0 }},
		{"negative height", func(c *Config) { c.Player.Height = -1 }},
		{"slope over 90", func(c *Config) { c.Player.MaxSlopeDegrees = 120 }},
		{"upward terminal speed", func(c *Config) { c.Physics.MaxFallSpeed = 5 }},
		{"friction above 1", func(c *Config) { c.Physics.AirFriction = 2 }},
		{"empty map", func(c *Config) { c.Terrain.MapWidth = 0 }},
		{"negative hysteresis", func(c *Config) { c.Terrain.Hysteresis = -0.1 }},
		{"zero timestep", func(c *Config) { c.Simulation.Timestep = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "headless flags",
			setup: func() {
				*flagHeadless = true
				*flagFrames = 120
				*flagScript = "jump.yaml"
			},
			verify: func(cfg *Config) {
				if !cfg.Simulation.Headless {
					t.Error("expected headless with headless flag")
				}
				if cfg.Simulation.Frames != 120 {
					t.Errorf("expected 120 frames, got %d", cfg.Simulation.Frames)
				}
				if cfg.Simulation.Script != "jump.yaml" {
					t.Errorf("expected script jump.yaml, got %s", cfg.Simulation.Script)
				}
			},
			teardown: func() {
				*flagHeadless = false
				*flagFrames = 0
				*flagScript = ""
			},
		},
		{
			name: "terrain and log file flags",
			setup: func() {
				*flagTerrain = "dunes.glb"
				*flagLogFile = "run.log"
			},
			verify: func(cfg *Config) {
				if cfg.Terrain.Model != "dunes.glb" {
					t.Errorf("expected terrain dunes.glb, got %s", cfg.Terrain.Model)
				}
				if cfg.Logging.LogFile != "run.log" {
					t.Errorf("expected log file run.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagTerrain = ""
				*flagLogFile = ""
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
simulation:
  frames: 900
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height and frames should be from file since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
	if cfg.Simulation.Frames != 900 {
		t.Errorf("expected 900 frames from file, got %d", cfg.Simulation.Frames)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("player:\n  height: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject a zero player height")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.Model = "saved.glb"
	cfg.Player.CoyoteTime = 250 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Terrain.Model != "saved.glb" || loaded.Player.CoyoteTime != 250*time.Millisecond {
		t.Errorf("saved values not restored: model=%s coyote=%v", loaded.Terrain.Model, loaded.Player.CoyoteTime)
	}
}

func TestSaveToRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Simulation.Timestep = 0
	if err := cfg.SaveTo(path); err == nil {
		t.Fatal("expected SaveTo to reject a zero timestep")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("invalid config should not be written, stat err = %v", err)
	}
}

func TestSaveToReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("garbage: ["), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := Default().SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), savedHeader) {
		t.Errorf("expected header comment, got %q", firstLine(string(data)))
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind, stat err = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
}

func TestSavePath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	defer func() { *flagSaveConfig = "" }()

	tests := []struct {
		flag string
		want string
	}{
		{"", ""},
		{"out/arena.yaml", "out/arena.yaml"},
		{UserPathAlias, filepath.Join(xdg, "arena", "config.yaml")},
	}
	for _, tt := range tests {
		*flagSaveConfig = tt.flag
		if got := SavePath(); got != tt.want {
			t.Errorf("SavePath() with -save-config=%q = %q, want %q", tt.flag, got, tt.want)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
