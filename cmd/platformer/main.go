// Command platformer runs the game in an Ebiten window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/config"
	"github.com/plus3/platformer/scene"
	"github.com/plus3/platformer/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML configuration file")
	startLevel := flag.Int("level", -1, "start this level index directly instead of showing the menu")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	catalog := assets.Default()
	if cfg.Assets.Manifest != "" {
		catalog, err = assets.Load(cfg.Assets.Manifest)
		if err != nil {
			log.Fatal("load animation manifest", zap.String("path", cfg.Assets.Manifest), zap.Error(err))
		}
	}
	log.Info("animations loaded", zap.Int("count", catalog.Len()))

	levels := make([]scene.LevelInfo, len(cfg.Levels))
	for i, l := range cfg.Levels {
		levels[i] = scene.LevelInfo{Name: l.Name, Path: l.Path}
		if levels[i].Name == "" {
			levels[i].Name = fmt.Sprintf("Level %d", i+1)
		}
	}

	opts := cfg.WorldOptions()
	engine := scene.NewEngine(scene.Options{
		Title:  cfg.Window.Title,
		Levels: levels,
		NewWorld: func() *world.World {
			return world.New(opts, catalog, log)
		},
		Draw: scene.DrawFlags{
			Textures:  cfg.Debug.DrawTextures,
			Collision: cfg.Debug.DrawCollision,
			Grid:      cfg.Debug.DrawGrid,
		},
		TPS: cfg.Window.TPS,
	}, log)

	if *startLevel >= 0 && !engine.StartLevel(*startLevel) {
		log.Fatal("start level", zap.Int("index", *startLevel))
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.TPS > 0 {
		ebiten.SetTPS(cfg.Window.TPS)
	}

	game := newGame(engine, cfg, log)
	log.Info("starting",
		zap.String("title", cfg.Window.Title),
		zap.Int("levels", len(levels)),
		zap.Bool("overlay", cfg.Debug.Overlay))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("game exited", zap.Error(err))
	}
	log.Info("shutdown")
}

// loadConfig reads path, falling back to the defaults when the file does
// not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
