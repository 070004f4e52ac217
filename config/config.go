// Package config loads the game configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/plus3/platformer/vec"
	"github.com/plus3/platformer/world"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  WindowConfig  `toml:"window"`
	World   WorldConfig   `toml:"world"`
	Assets  AssetsConfig  `toml:"assets"`
	Levels  []LevelConfig `toml:"levels"`
	Logging LoggingConfig `toml:"logging"`
	Debug   DebugConfig   `toml:"debug"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"` // simulation ticks per second
}

type WorldConfig struct {
	Capacity    int     `toml:"capacity"`
	CellSize    float32 `toml:"cell_size"`
	Movement    string  `toml:"movement"` // "instant" or "momentum"
	States      string  `toml:"states"`   // "two" or "four"
	BrickPoints int     `toml:"brick_points"`
	CoinPoints  int     `toml:"coin_points"`
}

type AssetsConfig struct {
	Manifest string `toml:"manifest"` // animation manifest; empty uses the builtin set
}

type LevelConfig struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

type DebugConfig struct {
	Overlay       bool `toml:"overlay"` // ImGui entity browser
	DrawTextures  bool `toml:"draw_textures"`
	DrawCollision bool `toml:"draw_collision"`
	DrawGrid      bool `toml:"draw_grid"`
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	levels := cfg.Levels
	cfg.Levels = nil // a file's level list replaces the default one entirely
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = levels
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Definitely Not Mario",
			Width:  1280,
			Height: 768,
			TPS:    60,
		},
		World: WorldConfig{
			Capacity:    100000,
			CellSize:    64,
			Movement:    string(world.MovementInstant),
			States:      string(world.StatesTwo),
			BrickPoints: 50,
			CoinPoints:  100,
		},
		Levels: []LevelConfig{
			{Name: "Level 1", Path: "levels/level1.txt"},
			{Name: "Level 2", Path: "levels/level2.txt"},
			{Name: "Level 3", Path: "levels/level3.lua"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Debug: DebugConfig{
			DrawTextures: true,
		},
	}
}

// Validate checks the values that have no sensible fallback.
func (c *Config) Validate() error {
	switch world.MovementModel(c.World.Movement) {
	case world.MovementInstant, world.MovementMomentum:
	default:
		return fmt.Errorf("%w: world.movement %q", ErrInvalid, c.World.Movement)
	}
	switch world.StateModel(c.World.States) {
	case world.StatesTwo, world.StatesFour:
	default:
		return fmt.Errorf("%w: world.states %q", ErrInvalid, c.World.States)
	}
	if c.World.CellSize <= 0 {
		return fmt.Errorf("%w: world.cell_size must be positive", ErrInvalid)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalid)
	}
	for i, l := range c.Levels {
		if l.Path == "" {
			return fmt.Errorf("%w: levels[%d] has no path", ErrInvalid, i)
		}
	}
	return nil
}

// WorldOptions converts the world and window sections for world.New.
func (c *Config) WorldOptions() world.Options {
	return world.Options{
		Capacity:    c.World.Capacity,
		CellSize:    vec.New(c.World.CellSize, c.World.CellSize),
		Width:       float32(c.Window.Width),
		Height:      float32(c.Window.Height),
		Movement:    world.MovementModel(c.World.Movement),
		States:      world.StateModel(c.World.States),
		BrickPoints: c.World.BrickPoints,
		CoinPoints:  c.World.CoinPoints,
	}
}
