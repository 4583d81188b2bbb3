package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/logging"
	"chosenoffset.com/raycaster/internal/render/terminal"
	"chosenoffset.com/raycaster/internal/simulation"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON config; defaults are used when missing")
		mapPath    = flag.String("map", "", "map file to load instead of the built-in map")
		logFile    = flag.String("log", "raycaster-term.log", "rotating log file")
		debug      = flag.Bool("debug", false, "enable debug logging")
		tps        = flag.Int("tps", 30, "ticks per second")
	)
	flag.Parse()

	// stderr belongs to the terminal UI, so only log to the file
	log := logging.New(logging.Options{File: *logFile, Debug: *debug})
	defer logging.Sync(log)

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mapPath != "" {
		cfg.Grid.MapPath = *mapPath
	}

	world, err := game.LoadWorld(cfg)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}
	state := game.NewState(cfg, world)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	driver := terminal.New(screen, state, cfg.Movement.KeyRotationSpeed*4, log)
	log.Infow("starting", "map", world.Name, "tps", *tps)
	if err := driver.Run(ctx, *tps); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorw("terminal loop failed", "error", err)
		logging.Sync(log)
		os.Exit(1)
	}
}
