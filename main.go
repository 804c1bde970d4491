package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/billboard/config"
	"github.com/milk9111/billboard/ecs/entity"
	"github.com/milk9111/billboard/logging"
	"github.com/milk9111/billboard/prefabs"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, json or toml)")
	level := flag.String("level", "", "log level: trace, debug, info, warn or error")
	debug := flag.Bool("debug", false, "shorthand for -level debug")
	hot := flag.Bool("hot", false, "reload prefabs from disk when they change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		errLog := logging.New("error", os.Stderr)
		errLog.Fatal().Err(err).Msg("load config")
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if *hot {
		cfg.Prefabs.HotReload = true
	}

	log := logging.New(cfg.LogLevel, os.Stderr)

	prefabs.SetDir(cfg.Prefabs.Dir)
	entity.DefaultLookBack = cfg.Camera.LookBack
	entity.DefaultTurnRate = cfg.Character.TurnRate

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	game, err := NewGame(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start")
	}
	defer game.Close()

	log.Info().Str("prefabs", cfg.Prefabs.Dir).Int("tps", cfg.Window.TPS).Msg("starting")
	if err := ebiten.RunGame(game); err != nil {
		log.Error().Err(err).Msg("run")
	}
}
