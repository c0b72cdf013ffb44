package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagHeadless   = flag.Bool("headless", false, "Run the fixed-timestep simulation without a window")
	flagFrames     = flag.Int("frames", 0, "Number of frames to simulate in headless mode")
	flagScript     = flag.String("script", "", "Input script for headless mode")
	flagTerrain    = flag.String("terrain", "", "Path to a glTF/GLB terrain model")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSaveConfig = flag.String("save-config", "", `Write the merged config to this path and exit ("user" for the config directory)`)
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SavePath returns where -save-config asked the merged config to be written,
// or "" when the flag is unset.
func SavePath() string {
	if *flagSaveConfig == UserPathAlias {
		return UserConfigPath()
	}
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHeadless {
		cfg.Simulation.Headless = true
	}
	if *flagFrames > 0 {
		cfg.Simulation.Frames = *flagFrames
	}
	if *flagScript != "" {
		cfg.Simulation.Script = *flagScript
	}
	if *flagTerrain != "" {
		cfg.Terrain.Model = *flagTerrain
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
