package game

import (
	"fmt"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render/projection"
	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/world/grid"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Input is one tick of player input, independent of where it came from.
type Input struct {
	Forward int     // +1 forward, -1 back
	Strafe  int     // +1 toward heading − 90°, -1 toward heading + 90°
	Turn    float64 // radians added to the heading before moving
}

// TickResult reports what a tick did to the player.
type TickResult struct {
	Moved   bool
	Blocked bool // a move was requested but the destination was a wall
}

// World is the map and spawn a State starts from.
type World struct {
	Name    string
	Grid    *grid.Grid
	Spawn   geom.Point
	Heading float64
}

// LoadWorld builds the world described by cfg: the map file if one is
// configured, otherwise the built-in map with the player at the window
// center facing down.
func LoadWorld(cfg *simulation.Config) (*World, error) {
	if cfg.Grid.MapPath != "" {
		m, err := maploader.LoadMap(cfg.Grid.MapPath)
		if err != nil {
			return nil, err
		}
		name := m.Data.Name
		if name == "" {
			name = cfg.Grid.MapPath
		}
		return &World{Name: name, Grid: m.Grid, Spawn: m.Spawn(), Heading: m.Heading()}, nil
	}

	g, err := grid.New(float64(cfg.Grid.TileSize), grid.DefaultCells(cfg.Grid.Rows, cfg.Grid.Cols))
	if err != nil {
		return nil, fmt.Errorf("failed to build default grid: %w", err)
	}
	spawn := geom.Point{X: g.Width() / 2, Y: g.Height() / 2}
	if g.HasWallAt(spawn.X, spawn.Y) {
		return nil, fmt.Errorf("window center (%v, %v) is inside a wall", spawn.X, spawn.Y)
	}
	return &World{Name: "default", Grid: g, Spawn: spawn, Heading: geom.Radians(90)}, nil
}

// State owns everything that changes from frame to frame.
type State struct {
	Grid      *grid.Grid
	Player    *player.Player
	Caster    *raycast.Caster
	Projector *projection.Projector

	Rays      []raycast.Ray
	Strips    []projection.Strip
	TickCount uint64
}

// NewState places a player in the world and casts the first frame.
func NewState(cfg *simulation.Config, w *World) *State {
	width, height := w.Grid.Width(), w.Grid.Height()
	rayWidth := float64(cfg.View.RayWidth)
	count := int(width / rayWidth)

	s := &State{
		Grid:      w.Grid,
		Player:    player.New(w.Spawn, w.Heading, cfg.Movement.MoveSpeed, cfg.Movement.RotationSpeed),
		Caster:    raycast.NewCaster(cfg.FOV(), count, cfg.Runtime.Workers),
		Projector: projection.New(width, height, cfg.FOV(), w.Grid.TileSize(), rayWidth, cfg.ShadingModel()),
	}
	s.Refresh()
	return s
}

// ScreenSize returns the logical screen size in pixels.
func (s *State) ScreenSize() (int, int) {
	return int(s.Projector.ScreenWidth), int(s.Projector.ScreenHeight)
}

// Tick advances the simulation one step: turn, move, then recast the view.
func (s *State) Tick(in Input) TickResult {
	s.TickCount++

	if in.Turn != 0 {
		s.Player.Rotate(in.Turn)
	}
	s.Player.SetIntent(in.Forward, in.Strafe)

	var res TickResult
	if s.Player.Intent != (player.Intent{}) {
		res.Moved = s.Player.Update(s.Grid)
		res.Blocked = !res.Moved
	}

	s.Refresh()
	return res
}

// Refresh recasts every column and reprojects the strips for the current
// player pose.
func (s *State) Refresh() {
	heading := s.Player.Heading()
	s.Rays = s.Caster.CastAll(s.Grid, s.Player.Pos, heading, s.Rays)
	s.Strips = s.Projector.Project(s.Rays, heading, s.Strips)
}
