package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Rules RulesConfig `mapstructure:"rules"`
	Board BoardConfig `mapstructure:"board"`
}

// RulesConfig holds the economy and capture numbers of a match
type RulesConfig struct {
	CaptureCost                int `mapstructure:"capture_cost"`
	BaseCapacity               int `mapstructure:"base_capacity"`
	CaptureRate                int `mapstructure:"capture_rate"`
	AdjacencyBonusPerNeighbour int `mapstructure:"adjacency_bonus_per_neighbour"`
	BaseActionPoints           int `mapstructure:"base_action_points"`
	ExtraAPBonus               int `mapstructure:"extra_ap_bonus"`
	StartingResources          int `mapstructure:"starting_resources"`
}

// BoardConfig holds settings for the starting layout
type BoardConfig struct {
	TileYield        int `mapstructure:"tile_yield"`
	CaptureTarget    int `mapstructure:"capture_target"`
	ObjectiveDefense int `mapstructure:"objective_defense"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	LogEvents bool   `mapstructure:"log_events"`
}

// DemoConfig holds settings for the scripted demo match
type DemoConfig struct {
	BoardWidth      int  `mapstructure:"board_width"`
	BoardHeight     int  `mapstructure:"board_height"`
	MaxTurns        int  `mapstructure:"max_turns"`
	CapturesPerTurn int  `mapstructure:"captures_per_turn"`
	Color           bool `mapstructure:"color"`
}

var (
	// Global config instance; cfg is replaced on reload, never mutated in place
	mu          sync.RWMutex
	cfg         *Config
	v           *viper.Viper
	overlayFile string
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Rules
	v.SetDefault("game.rules.capture_cost", 5)
	v.SetDefault("game.rules.base_capacity", 2)
	v.SetDefault("game.rules.capture_rate", 10)
	v.SetDefault("game.rules.adjacency_bonus_per_neighbour", 5)
	v.SetDefault("game.rules.base_action_points", 1)
	v.SetDefault("game.rules.extra_ap_bonus", 1)
	v.SetDefault("game.rules.starting_resources", 10)

	// Board layout
	v.SetDefault("game.board.tile_yield", 1)
	v.SetDefault("game.board.capture_target", 100)
	v.SetDefault("game.board.objective_defense", 20)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.log_events", false)

	// Demo
	v.SetDefault("demo.board_width", 9)
	v.SetDefault("demo.board_height", 5)
	v.SetDefault("demo.max_turns", 80)
	v.SetDefault("demo.captures_per_turn", 2)
	v.SetDefault("demo.color", false)
}

// Init initializes the configuration. On failure the package is left
// unconfigured and the next Load retries with the default search path.
func Init(configPath string) error {
	mu.Lock()
	defer mu.Unlock()

	cfg = nil
	overlayFile = ""
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/territory-capture")
	}

	v.SetEnvPrefix("TCG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file falls back to defaults
		if !isNotFound(err) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded, err := decode(v)
	if err != nil {
		return err
	}

	cfg = loaded
	return nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func decode(vp *viper.Viper) (*Config, error) {
	loaded := &Config{}
	if err := vp.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(loaded); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return loaded, nil
}

// Load returns the current config, initializing it from the default search
// path on first use.
func Load() (*Config, error) {
	mu.RLock()
	loaded := cfg
	mu.RUnlock()
	if loaded != nil {
		return loaded, nil
	}

	if err := Init(""); err != nil {
		return nil, err
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg, nil
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config.
// The overlay is merged again on every hot reload.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return errors.New("config not initialized - call Init() first")
	}

	overlayFile = fmt.Sprintf("config.%s.yaml", env)
	if err := mergeOverlay(v, overlayFile); err != nil {
		return err
	}

	loaded, err := decode(v)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// mergeOverlay merges the keys set in path into vp. A missing overlay is
// not an error.
func mergeOverlay(vp *viper.Viper, path string) error {
	ov := viper.New()
	ov.SetConfigFile(path)
	if err := ov.ReadInConfig(); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("error merging environment config %s: %w", path, err)
	}
	return vp.MergeConfigMap(ov.AllSettings())
}

// ConfigFilePath returns the path of the loaded config file, or "" when
// running on defaults.
func ConfigFilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. Reloaded values
// that fail validation are ignored and the previous config is kept.
// onChange runs on the watcher goroutine.
func WatchConfig(onChange func(error)) error {
	mu.RLock()
	vp, overlay := v, overlayFile
	mu.RUnlock()
	if vp == nil || vp.ConfigFileUsed() == "" {
		return errors.New("no config file loaded to watch")
	}

	vp.OnConfigChange(func(fsnotify.Event) {
		err := reload(vp, overlay)
		if onChange != nil {
			onChange(err)
		}
	})
	vp.WatchConfig()
	return nil
}

func reload(vp *viper.Viper, overlay string) error {
	mu.Lock()
	defer mu.Unlock()

	if overlay != "" {
		if err := mergeOverlay(vp, overlay); err != nil {
			return err
		}
	}
	loaded, err := decode(vp)
	if err != nil {
		return err
	}
	// Only the instance from the latest Init owns cfg
	if vp == v {
		cfg = loaded
	}
	return nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	r := c.Game.Rules
	if r.CaptureCost < 0 {
		return fmt.Errorf("game.rules.capture_cost must be non-negative")
	}
	if r.BaseCapacity < 0 {
		return fmt.Errorf("game.rules.base_capacity must be non-negative")
	}
	if r.CaptureRate < 0 {
		return fmt.Errorf("game.rules.capture_rate must be non-negative")
	}
	if r.AdjacencyBonusPerNeighbour < 0 {
		return fmt.Errorf("game.rules.adjacency_bonus_per_neighbour must be non-negative")
	}
	if r.BaseActionPoints < 0 || r.ExtraAPBonus < 0 {
		return fmt.Errorf("game.rules action points must be non-negative")
	}
	if r.StartingResources < 0 {
		return fmt.Errorf("game.rules.starting_resources must be non-negative")
	}

	b := c.Game.Board
	if b.TileYield < 0 {
		return fmt.Errorf("game.board.tile_yield must be non-negative")
	}
	if b.CaptureTarget <= 0 {
		return fmt.Errorf("game.board.capture_target must be positive")
	}
	if b.ObjectiveDefense < 0 {
		return fmt.Errorf("game.board.objective_defense must be non-negative")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.Demo.BoardWidth < 2 || c.Demo.BoardHeight < 1 {
		return fmt.Errorf("demo board must be at least 2x1")
	}
	if c.Demo.MaxTurns <= 0 {
		return fmt.Errorf("demo.max_turns must be positive")
	}
	if c.Demo.CapturesPerTurn < 0 {
		return fmt.Errorf("demo.captures_per_turn must be non-negative")
	}

	return nil
}
