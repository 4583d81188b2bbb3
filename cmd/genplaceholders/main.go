package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/placeholders"
	"chosenoffset.com/raycaster/internal/simulation"
)

func main() {
	out := flag.String("out", "data/maps", "directory for the generated maps")
	previews := flag.Bool("previews", true, "also render a PNG of each map's first frame")
	flag.Parse()

	fmt.Println("Raycaster Placeholder Map Generator")
	fmt.Println("===================================")
	fmt.Println()

	paths, err := placeholders.GenerateAndSave(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, p := range paths {
		fmt.Printf("  wrote %s\n", p)
		if !*previews {
			continue
		}
		png := strings.TrimSuffix(p, filepath.Ext(p)) + ".png"
		if err := writePreview(p, png); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  wrote %s\n", png)
	}

	fmt.Println()
	fmt.Println("Done! Press N in the game to cycle through the maps.")
}

func writePreview(mapPath, pngPath string) error {
	cfg := simulation.DefaultConfig()
	cfg.Grid.MapPath = mapPath
	world, err := game.LoadWorld(cfg)
	if err != nil {
		return err
	}
	return placeholders.SavePNG(placeholders.Snapshot(game.NewState(cfg, world)), pngPath)
}
