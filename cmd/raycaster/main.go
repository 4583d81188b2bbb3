package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/raycaster/internal/audio"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/gamescanner"
	"chosenoffset.com/raycaster/internal/logging"
	"chosenoffset.com/raycaster/internal/profiling"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/simulation"
)

var (
	configPath  = flag.String("config", "config.json", "path to the JSON config; defaults are used when missing")
	mapPath     = flag.String("map", "", "map file to load instead of the built-in map")
	dataDir     = flag.String("data", "data", "directory scanned for maps (N cycles through them)")
	listMaps    = flag.Bool("list-maps", false, "print the maps found in -data and exit")
	logFile     = flag.String("log", "raycaster.log", "rotating log file; empty disables file logging")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	muteFlag    = flag.Bool("mute", false, "disable the wall bump sound")
	cpuProfile  = flag.String("cpuprofile", "", "write a CPU profile to this file")
	workersFlag = flag.Int("workers", 0, "goroutines used to cast rays (0 keeps the config value)")
)

func main() {
	flag.Parse()

	log := logging.New(logging.Options{File: *logFile, Console: true, Debug: *debugFlag})
	defer logging.Sync(log)

	if *listMaps {
		maps, err := gamescanner.ScanDataDirectory(*dataDir)
		if err != nil {
			log.Fatalf("Failed to scan data directory: %v", err)
		}
		for _, m := range maps {
			fmt.Printf("%-20s %3dx%-3d %s\n", m.Name, m.Cols, m.Rows, m.Path)
		}
		return
	}

	if *cpuProfile != "" {
		stop, err := profiling.StartCPU(*cpuProfile)
		if err != nil {
			log.Fatalf("Failed to start profiling: %v", err)
		}
		defer stop()
	}

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mapPath != "" {
		cfg.Grid.MapPath = *mapPath
	}
	if *workersFlag > 0 {
		cfg.Runtime.Workers = *workersFlag
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager, err := game.NewManager(cfg, renderer, inputMgr, log)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	if maps, err := gamescanner.ScanDataDirectory(*dataDir); err != nil {
		log.Infow("no maps to cycle through", "dir", *dataDir, "error", err)
	} else {
		manager.SetMaps(maps)
	}

	if !*muteFlag {
		bump := audio.NewBumpPlayer(0.4)
		if err := bump.Initialize(); err != nil {
			log.Warnw("audio disabled", "error", err)
		} else {
			defer bump.Close()
			manager.SetBumpCue(bump)
		}
	}

	// Set up the window
	w, h := manager.Layout(0, 0)
	engine.SetWindowSize(w, h)
	engine.SetWindowTitle("Raycaster")
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Runtime.TPS)

	log.Infow("starting", "width", w, "height", h, "tps", cfg.Runtime.TPS, "workers", cfg.Runtime.Workers)
	if err := engine.RunGame(manager); err != nil && !errors.Is(err, game.ErrQuit) {
		log.Errorw("game loop failed", "error", err)
		logging.Sync(log)
		os.Exit(1)
	}
}
