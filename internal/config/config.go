// Package config handles simulation configuration loading and management.
package config

import "time"

// Config holds all settings.
type Config struct {
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Camera     CameraConfig     `yaml:"camera"`
	Animation  AnimationConfig  `yaml:"animation"`
	Simulation SimulationConfig `yaml:"simulation"`
	Window     WindowConfig     `yaml:"window"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PlayerConfig holds the actor constants and ground resolution tuning.
type PlayerConfig struct {
	SpawnPosition [3]float32 `yaml:"spawn_position"`
	SpawnFacing   [3]float32 `yaml:"spawn_facing"`
	SpawnRotation float32    `yaml:"spawn_rotation"` // degrees
	Radius        float32    `yaml:"radius"`
	Height        float32    `yaml:"height"`
	MoveSpeed     float32    `yaml:"move_speed"`
	JumpSpeed     float32    `yaml:"jump_speed"`

	CoyoteTime      time.Duration `yaml:"coyote_time"`
	SnapDistance    float32       `yaml:"snap_distance"`
	MaxSlopeDegrees float32       `yaml:"max_slope_degrees"`
	NormalSampling  float32       `yaml:"normal_sample_radius"`
	ProjectOnGround bool          `yaml:"project_on_ground"`

	MovementThreshold float32 `yaml:"movement_threshold"`
	VelocityThreshold float32 `yaml:"velocity_threshold"`
	WalkThreshold     float32 `yaml:"walk_threshold"`
}

// PhysicsConfig holds integrator constants.
type PhysicsConfig struct {
	Gravity            float32 `yaml:"gravity"`
	MaxFallSpeed       float32 `yaml:"max_fall_speed"`
	AirControl         float32 `yaml:"air_control"`
	AirFriction        float32 `yaml:"air_friction"`
	SpeedCapMultiplier float32 `yaml:"speed_cap_multiplier"`
	TurnRate           float32 `yaml:"turn_rate"`
	SlideAcceleration  float32 `yaml:"slide_acceleration"`
	SlideDamping       float32 `yaml:"slide_damping"`
	SlideOffset        float32 `yaml:"slide_offset"`
}

// TerrainConfig holds the ground model and collider settings.
type TerrainConfig struct {
	Model           string           `yaml:"model"` // glTF/GLB path, empty uses Procedural
	Hysteresis      float32          `yaml:"hysteresis"`
	RadiusFootprint bool             `yaml:"radius_footprint"`
	MapWidth        float32          `yaml:"map_width"`
	MapDepth        float32          `yaml:"map_depth"`
	Procedural      ProceduralConfig `yaml:"procedural"`
}

// ProceduralConfig describes the generated terrain used when no model is set.
type ProceduralConfig struct {
	Shape      string  `yaml:"shape"` // flat, ramp or hills
	TilesX     int     `yaml:"tiles_x"`
	TilesZ     int     `yaml:"tiles_z"`
	TileSize   float32 `yaml:"tile_size"`
	Amplitude  float32 `yaml:"amplitude"`
	Wavelength float32 `yaml:"wavelength"`
}

// CameraConfig holds view settings.
type CameraConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // degrees per pixel per second
	ViewScale        float32 `yaml:"view_scale"`        // pixels per world unit in the debug view
}

// AnimationConfig holds clip playback settings.
type AnimationConfig struct {
	DefaultSpeed float32               `yaml:"default_speed"` // frames per second
	Clips        map[string]ClipConfig `yaml:"clips"`
}

// ClipConfig describes one animation clip.
type ClipConfig struct {
	Frames int     `yaml:"frames"`
	Speed  float32 `yaml:"speed"`
}

// SimulationConfig holds main loop settings.
type SimulationConfig struct {
	Timestep time.Duration `yaml:"timestep"`
	Frames   int           `yaml:"frames"` // headless run length
	Headless bool          `yaml:"headless"`
	Script   string        `yaml:"script"` // input timeline for headless runs
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			SpawnPosition:     [3]float32{0, 5, 0},
			SpawnFacing:       [3]float32{1, 0, 0},
			SpawnRotation:     0,
			Radius:            0.5,
			Height:            1.0,
			MoveSpeed:         2.0,
			JumpSpeed:         5.0,
			CoyoteTime:        100 * time.Millisecond,
			SnapDistance:      0.1,
			MaxSlopeDegrees:   45,
			NormalSampling:    1.0,
			ProjectOnGround:   true,
			MovementThreshold: 0.001,
			VelocityThreshold: 0.01,
			WalkThreshold:     0.1,
		},
		Physics: PhysicsConfig{
			Gravity:            -9.8,
			MaxFallSpeed:       -20,
			AirControl:         0.3,
			AirFriction:        0.5,
			SpeedCapMultiplier: 1.5,
			TurnRate:           10,
			SlideAcceleration:  1.0,
			SlideDamping:       0.9,
			SlideOffset:        0.02,
		},
		Terrain: TerrainConfig{
			Model:           "",
			Hysteresis:      0.05,
			RadiusFootprint: false,
			MapWidth:        100,
			MapDepth:        100,
			Procedural: ProceduralConfig{
				Shape:      "flat",
				TilesX:     50,
				TilesZ:     50,
				TileSize:   2,
				Amplitude:  1,
				Wavelength: 16,
			},
		},
		Camera: CameraConfig{
			MouseSensitivity: 150,
			ViewScale:        8,
		},
		Animation: AnimationConfig{
			DefaultSpeed: 30,
			Clips: map[string]ClipConfig{
				"idle":       {Frames: 60},
				"walk":       {Frames: 30},
				"jump_start": {Frames: 20},
				"jump_land":  {Frames: 20},
			},
		},
		Simulation: SimulationConfig{
			Timestep: time.Second / 60,
			Frames:   300,
			Headless: false,
			Script:   "",
		},
		Window: WindowConfig{
			Title:      "Arena",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
