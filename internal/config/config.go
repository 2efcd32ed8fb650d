package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	UI          UIConfig          `mapstructure:"ui"`
	Colors      ColorsConfig      `mapstructure:"colors"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	LevelPath string `mapstructure:"level_path"`
	MaxTurns  int    `mapstructure:"max_turns"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Game   UIGameConfig `mapstructure:"game"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// UIGameConfig holds UI game settings
type UIGameConfig struct {
	TileSize       int `mapstructure:"tile_size"`
	PhaseStepDelay int `mapstructure:"phase_step_delay"`
}

// ColorsConfig holds all color configurations
type ColorsConfig struct {
	Tiles    TileColorsConfig   `mapstructure:"tiles"`
	Entities EntityColorsConfig `mapstructure:"entities"`
	UI       UIColorsConfig     `mapstructure:"ui"`
}

// TileColorsConfig holds ground tile color settings
type TileColorsConfig struct {
	Grass [3]int `mapstructure:"grass"`
	Water [3]int `mapstructure:"water"`
	Path  [3]int `mapstructure:"path"`
}

// EntityColorsConfig holds entity color settings
type EntityColorsConfig struct {
	Player [3]int `mapstructure:"player"`
	Enemy  [3]int `mapstructure:"enemy"`
	Tower  [3]int `mapstructure:"tower"`
	Rock   [3]int `mapstructure:"rock"`
	Goal   [3]int `mapstructure:"goal"`
}

// UIColorsConfig holds UI color settings
type UIColorsConfig struct {
	Background [3]int `mapstructure:"background"`
	GridLines  [3]int `mapstructure:"grid_lines"`
	Text       [3]int `mapstructure:"text"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging  bool `mapstructure:"verbose_logging"`
	ShowCoordinates bool `mapstructure:"show_coordinates"`
	ShowPathDist    bool `mapstructure:"show_path_dist"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.level_path", "")
	v.SetDefault("game.max_turns", 0) // 0 = unlimited

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// UI defaults
	v.SetDefault("ui.window.width", 800)
	v.SetDefault("ui.window.height", 600)
	v.SetDefault("ui.window.title", "Gridward")
	v.SetDefault("ui.game.tile_size", 48)
	v.SetDefault("ui.game.phase_step_delay", 12)

	// Color defaults
	v.SetDefault("colors.tiles.grass", []int{90, 160, 70})
	v.SetDefault("colors.tiles.water", []int{50, 100, 200})
	v.SetDefault("colors.tiles.path", []int{190, 170, 120})
	v.SetDefault("colors.entities.player", []int{240, 240, 240})
	v.SetDefault("colors.entities.enemy", []int{200, 50, 50})
	v.SetDefault("colors.entities.tower", []int{230, 200, 60})
	v.SetDefault("colors.entities.rock", []int{80, 80, 80})
	v.SetDefault("colors.entities.goal", []int{160, 60, 200})
	v.SetDefault("colors.ui.background", []int{0, 0, 0})
	v.SetDefault("colors.ui.grid_lines", []int{50, 50, 50})
	v.SetDefault("colors.ui.text", []int{255, 255, 255})

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_coordinates", false)
	v.SetDefault("development.show_path_dist", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/gridward")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("GW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If we have a specific config path and it doesn't exist, that's ok - use defaults
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.MaxTurns < 0 {
		return fmt.Errorf("game.max_turns must be non-negative")
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.Game.TileSize <= 0 {
		return fmt.Errorf("ui.game.tile_size must be positive")
	}
	if c.UI.Game.PhaseStepDelay < 0 {
		return fmt.Errorf("ui.game.phase_step_delay must be non-negative")
	}

	validateRGB := func(rgb [3]int, name string) error {
		for i, comp := range rgb {
			if comp < 0 || comp > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}

	rgbFields := []struct {
		val  [3]int
		name string
	}{
		{c.Colors.Tiles.Grass, "colors.tiles.grass"},
		{c.Colors.Tiles.Water, "colors.tiles.water"},
		{c.Colors.Tiles.Path, "colors.tiles.path"},
		{c.Colors.Entities.Player, "colors.entities.player"},
		{c.Colors.Entities.Enemy, "colors.entities.enemy"},
		{c.Colors.Entities.Tower, "colors.entities.tower"},
		{c.Colors.Entities.Rock, "colors.entities.rock"},
		{c.Colors.Entities.Goal, "colors.entities.goal"},
		{c.Colors.UI.Background, "colors.ui.background"},
		{c.Colors.UI.GridLines, "colors.ui.grid_lines"},
		{c.Colors.UI.Text, "colors.ui.text"},
	}
	for _, f := range rgbFields {
		if err := validateRGB(f.val, f.name); err != nil {
			return err
		}
	}

	return nil
}
