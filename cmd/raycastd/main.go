package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/logging"
	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/stream"
)

// raycastd runs the simulation headless and streams frames over websockets.
func main() {
	defaults := stream.DefaultOptions()
	var (
		addr       = flag.String("addr", ":8080", "server listen address, e.g. :8080")
		configPath = flag.String("config", "config.json", "path to the JSON config; defaults are used when missing")
		mapPath    = flag.String("map", "", "map file to load instead of the built-in map")
		logFile    = flag.String("log", "raycastd.log", "rotating log file")
		debug      = flag.Bool("debug", false, "enable debug logging")
		tps        = flag.Int("tps", defaults.TPS, "ticks per second")
		columns    = flag.Int("columns", defaults.MaxColumns, "wall columns per frame (0 sends every ray)")
	)
	flag.Parse()

	log := logging.New(logging.Options{File: *logFile, Console: true, Debug: *debug})
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

	opts := defaults
	opts.TPS = *tps
	opts.MaxColumns = *columns
	srv := stream.NewServer(cfg, game.NewState(cfg, world), opts, log)

	httpSrv := &http.Server{Addr: *addr, Handler: srv.Handler()}
	go func() {
		log.Infof("raycastd listening on %s (map %s)", *addr, world.Name)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorw("tick loop failed", "error", err)
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warnw("shutdown", "error", err)
	}
}
