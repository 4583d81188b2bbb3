package maploader

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// SpawnPoint defines the player spawn location in world units
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapData represents the loaded map file
type MapData struct {
	Name           string     `json:"name"`
	TileSize       int        `json:"tile_size"`
	PlayerSpawn    SpawnPoint `json:"player_spawn"`
	HeadingDegrees float64    `json:"heading_degrees"`
	Tiles          [][]int    `json:"tiles"` // [row][col], non-zero is a wall
}

// Map represents a loaded map with its grid built
type Map struct {
	Data *MapData
	Grid *grid.Grid
}

// LoadMap loads a map from a JSON file and builds its grid
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}
	return m, nil
}

// Parse decodes and validates map JSON
func Parse(data []byte) (*Map, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}

	g, err := grid.New(float64(mapData.TileSize), mapData.Tiles)
	if err != nil {
		return nil, err
	}

	if g.HasWallAt(mapData.PlayerSpawn.X, mapData.PlayerSpawn.Y) {
		return nil, fmt.Errorf("player spawn (%v, %v) is inside a wall", mapData.PlayerSpawn.X, mapData.PlayerSpawn.Y)
	}

	return &Map{Data: &mapData, Grid: g}, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}

	if len(data.Tiles) == 0 {
		return fmt.Errorf("tiles array is empty")
	}

	width := len(data.Tiles[0])
	for y, row := range data.Tiles {
		if len(row) != width {
			return fmt.Errorf("tiles array width mismatch at row %d: expected %d, got %d", y, width, len(row))
		}
	}

	if math.IsNaN(data.PlayerSpawn.X) || math.IsNaN(data.PlayerSpawn.Y) {
		return fmt.Errorf("player spawn is not a number")
	}

	return nil
}

// Spawn returns the player spawn position
func (m *Map) Spawn() geom.Point {
	return geom.Point{X: m.Data.PlayerSpawn.X, Y: m.Data.PlayerSpawn.Y}
}

// Heading returns the spawn heading in radians, normalized to [0, 2π)
func (m *Map) Heading() float64 {
	return geom.NormalizeAngle(geom.Radians(m.Data.HeadingDegrees))
}
