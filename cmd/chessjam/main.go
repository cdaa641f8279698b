package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/chessjam/internal/chess"
	"github.com/Garsondee/chessjam/internal/config"
	"github.com/Garsondee/chessjam/internal/game"
	"github.com/Garsondee/chessjam/internal/obslog"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "YAML file overriding the embedded defaults (or $"+config.EnvPath+")")
	flag.Parse()

	if err := obslog.InitFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	log := obslog.L()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("load config", zap.Error(err))
		os.Exit(1)
	}

	res := cfg.Graphics.Resolution
	ebiten.SetWindowTitle("chessjam")
	ebiten.SetWindowSize(res[0], res[1])
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(cfg.Graphics.VSync)

	g := game.New(cfg, chess.NewLegalityOracle())
	if err := ebiten.RunGame(g); err != nil {
		log.Error("game ended with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	log.Info("bye", zap.Int("restarts", g.Restarts()))
}
