package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"delve/internal/config"
	"delve/internal/game"
	"delve/internal/logger"
	"delve/internal/telemetry"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML/TOML/JSON config file")
	seed := flag.Int64("seed", 0, "Dungeon seed (0 picks one from the clock; overrides seed)")
	script := flag.String("script", "", "Play the actions in this file and print the final frame")
	plain := flag.Bool("plain", false, "Print the opening frame and exit")
	flag.Parse()

	if err := run(*configPath, *seed, *script, *plain); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seedFlag int64, script string, plain bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logFile := cfg.Log.File
	if logFile == "" {
		// The terminal belongs to the game; keep log lines off it.
		logFile = logger.DefaultFile()
	}
	if err := logger.Init(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: logFile}); err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.WithError(err).Warn("telemetry disabled")
		} else {
			defer func() { _ = shutdown(ctx) }()
		}
	}

	if seedFlag == 0 {
		seedFlag = cfg.Seed
	}
	seed := game.ResolveSeed(seedFlag)
	logger.Log.WithFields(logrus.Fields{"seed": seed, "script": script, "plain": plain}).Info("starting")

	switch {
	case script != "":
		f, err := os.Open(script)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = game.RunScript(ctx, cfg, seed, f, os.Stdout)
		return err
	case plain:
		return game.RunPlain(ctx, cfg, seed, os.Stdout)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g, err := game.New(ctx, screen, cfg, seed)
	if err != nil {
		return err
	}
	return g.Run(ctx)
}
