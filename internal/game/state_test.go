package game

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/raycaster/internal/simulation"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	cfg := simulation.DefaultConfig()
	w, err := LoadWorld(cfg)
	if err != nil {
		t.Fatalf("Failed to load world: %v", err)
	}
	return NewState(cfg, w)
}

func TestNewStateCastsFirstFrame(t *testing.T) {
	s := newTestState(t)

	if len(s.Rays) != 900 || len(s.Strips) != 900 {
		t.Fatalf("Expected 900 rays and strips, got %d and %d", len(s.Rays), len(s.Strips))
	}
	if s.Player.Pos.X != 450 || s.Player.Pos.Y != 330 {
		t.Errorf("Expected spawn at window center, got %v", s.Player.Pos)
	}
	if math.Abs(s.Player.Heading()-math.Pi/2) > 1e-12 {
		t.Errorf("Expected heading π/2, got %v", s.Player.Heading())
	}
	if w, h := s.ScreenSize(); w != 900 || h != 660 {
		t.Errorf("Expected 900x660 screen, got %dx%d", w, h)
	}
	for i, r := range s.Rays {
		if !r.Found {
			t.Fatalf("column %d: expected every ray to hit inside the map", i)
		}
	}
}

func TestTickMovesForward(t *testing.T) {
	s := newTestState(t)
	res := s.Tick(Input{Forward: 1})

	if !res.Moved || res.Blocked {
		t.Fatalf("Expected a move, got %+v", res)
	}
	if math.Abs(s.Player.Pos.Y-333) > 1e-9 || math.Abs(s.Player.Pos.X-450) > 1e-9 {
		t.Errorf("Expected (450, 333), got %v", s.Player.Pos)
	}
	if s.TickCount != 1 {
		t.Errorf("Expected tick count 1, got %d", s.TickCount)
	}
}

func TestTickStopsAtWall(t *testing.T) {
	s := newTestState(t)

	var res TickResult
	for i := 0; i < 200; i++ {
		res = s.Tick(Input{Forward: 1})
	}
	if !res.Blocked || res.Moved {
		t.Fatalf("Expected to end blocked, got %+v", res)
	}
	// bottom wall row starts at y = 600
	if s.Player.Pos.Y >= 600 || s.Player.Pos.Y < 594 {
		t.Errorf("Expected to stop just above y=600, got %v", s.Player.Pos.Y)
	}
	if s.Grid.HasWallAt(s.Player.Pos.X, s.Player.Pos.Y) {
		t.Error("Player ended inside a wall")
	}
}

func TestTickTurnWithoutMove(t *testing.T) {
	s := newTestState(t)
	before := s.Rays[0]

	res := s.Tick(Input{Turn: 0.5})
	if res.Moved || res.Blocked {
		t.Errorf("Expected no movement, got %+v", res)
	}
	if math.Abs(s.Player.Heading()-(math.Pi/2+0.5)) > 1e-12 {
		t.Errorf("Expected heading π/2+0.5, got %v", s.Player.Heading())
	}
	if s.Rays[0] == before {
		t.Error("Expected rays to be recast after turning")
	}
}

func TestLoadWorldFromMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	data := `{"name": "room", "tile_size": 32, "player_spawn": {"x": 48, "y": 48}, "heading_degrees": 0,
		"tiles": [[1, 1, 1, 1], [1, 0, 0, 1], [1, 1, 1, 1]]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := simulation.DefaultConfig()
	cfg.Grid.MapPath = path
	w, err := LoadWorld(cfg)
	if err != nil {
		t.Fatalf("Failed to load world: %v", err)
	}
	if w.Name != "room" || w.Grid.Cols() != 4 || w.Heading != 0 {
		t.Errorf("Unexpected world %+v", w)
	}

	s := NewState(cfg, w)
	if sw, sh := s.ScreenSize(); sw != 128 || sh != 96 {
		t.Errorf("Expected 128x96 screen, got %dx%d", sw, sh)
	}
	if len(s.Rays) != 128 {
		t.Errorf("Expected 128 rays, got %d", len(s.Rays))
	}
}

func TestLoadWorldErrors(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Grid.MapPath = filepath.Join(t.TempDir(), "missing.json")
	if _, err := LoadWorld(cfg); err == nil {
		t.Error("Expected error for missing map")
	}

	// a 2x2 bordered room is all wall
	cfg = simulation.DefaultConfig()
	cfg.Grid.Rows, cfg.Grid.Cols = 2, 2
	if _, err := LoadWorld(cfg); err == nil {
		t.Error("Expected error when the window center is a wall")
	}
}

func TestLoadWorldCustomSizeIsBorderedRoom(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Grid.Rows, cfg.Grid.Cols = 7, 9
	w, err := LoadWorld(cfg)
	if err != nil {
		t.Fatalf("Failed to load world: %v", err)
	}
	if w.Spawn.X != 270 || w.Spawn.Y != 210 {
		t.Errorf("Expected spawn (270, 210), got %v", w.Spawn)
	}
	if w.Grid.TileAt(1, 1) || !w.Grid.TileAt(0, 0) {
		t.Error("Expected an empty room ringed by walls")
	}
}
