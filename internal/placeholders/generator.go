// Package placeholders generates sample maps and frame previews so a fresh
// checkout has something to walk through.
package placeholders

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"chosenoffset.com/raycaster/internal/world/grid"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// TileSize is the tile size of the generated maps
const TileSize = 60

// SampleMaps returns the built-in sample maps keyed by file stem
func SampleMaps() map[string]*maploader.MapData {
	return map[string]*maploader.MapData{
		"classic": {
			Name:           "Classic",
			TileSize:       TileSize,
			PlayerSpawn:    maploader.SpawnPoint{X: 450, Y: 330},
			HeadingDegrees: 90,
			Tiles:          grid.DefaultCells(grid.DefaultRows, grid.DefaultCols),
		},
		"room": {
			Name:           "Empty Room",
			TileSize:       TileSize,
			PlayerSpawn:    maploader.SpawnPoint{X: 390, Y: 270},
			HeadingDegrees: 0,
			Tiles:          grid.DefaultCells(9, 13),
		},
		"pillars": {
			Name:           "Pillar Hall",
			TileSize:       TileSize,
			PlayerSpawn:    maploader.SpawnPoint{X: 90, Y: 90},
			HeadingDegrees: 45,
			Tiles:          pillarCells(11, 15),
		},
	}
}

// pillarCells is a bordered room with a pillar on every even interior tile
func pillarCells(rows, cols int) [][]int {
	cells := grid.DefaultCells(rows, cols)
	for y := 2; y < rows-1; y += 2 {
		for x := 2; x < cols-1; x += 2 {
			cells[y][x] = 1
		}
	}
	return cells
}

// GenerateAndSave writes every sample map as JSON into dir
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	maps := SampleMaps()
	stems := make([]string, 0, len(maps))
	for stem := range maps {
		stems = append(stems, stem)
	}
	sort.Strings(stems)

	var written []string
	for _, stem := range stems {
		path := filepath.Join(dir, stem+".json")
		if err := SaveMap(maps[stem], path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// SaveMap writes map data as indented JSON
func SaveMap(data *maploader.MapData, path string) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode map %s: %w", data.Name, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write map %s: %w", path, err)
	}
	return nil
}
