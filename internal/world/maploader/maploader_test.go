package maploader

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validMap = `{
	"name": "box",
	"tile_size": 60,
	"player_spawn": {"x": 90, "y": 90},
	"heading_degrees": 90,
	"tiles": [
		[1, 1, 1, 1],
		[1, 0, 0, 1],
		[1, 0, 0, 1],
		[1, 1, 1, 1]
	]
}`

func TestLoadMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.json")
	if err := os.WriteFile(path, []byte(validMap), 0o644); err != nil {
		t.Fatalf("Failed to write map: %v", err)
	}

	m, err := LoadMap(path)
	if err != nil {
		t.Fatalf("Failed to load map: %v", err)
	}

	if m.Data.Name != "box" {
		t.Errorf("Expected name 'box', got '%s'", m.Data.Name)
	}
	if m.Grid.Rows() != 4 || m.Grid.Cols() != 4 {
		t.Errorf("Expected 4x4 grid, got %dx%d", m.Grid.Cols(), m.Grid.Rows())
	}
	if m.Grid.Width() != 240 {
		t.Errorf("Expected width 240, got %v", m.Grid.Width())
	}
	if !m.Grid.HasWallAt(10, 10) {
		t.Error("Expected corner to be a wall")
	}
	if m.Grid.HasWallAt(m.Spawn().X, m.Spawn().Y) {
		t.Error("Expected spawn to be free")
	}
	if math.Abs(m.Heading()-math.Pi/2) > 1e-12 {
		t.Errorf("Expected heading π/2, got %v", m.Heading())
	}
}

func TestLoadMapMissingFile(t *testing.T) {
	_, err := LoadMap(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read map file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestParseRejectsInvalidMaps(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"tiles": `},
		{"zero tile size", `{"tile_size": 0, "tiles": [[0]]}`},
		{"no tiles", `{"tile_size": 60, "tiles": []}`},
		{"ragged", `{"tile_size": 60, "tiles": [[1, 1], [1]]}`},
		{"spawn in wall", `{"tile_size": 60, "player_spawn": {"x": 10, "y": 10}, "tiles": [[1, 1], [1, 0]]}`},
		{"spawn outside", `{"tile_size": 60, "player_spawn": {"x": 500, "y": 10}, "tiles": [[0, 0], [0, 0]]}`},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestHeadingNormalized(t *testing.T) {
	m, err := Parse([]byte(`{"tile_size": 60, "player_spawn": {"x": 30, "y": 30}, "heading_degrees": -90, "tiles": [[0]]}`))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if math.Abs(m.Heading()-1.5*math.Pi) > 1e-12 {
		t.Errorf("Expected heading 1.5π, got %v", m.Heading())
	}
}
