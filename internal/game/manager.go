package game

import (
	"fmt"

	"go.uber.org/zap"

	"chosenoffset.com/raycaster/internal/gamescanner"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/simulation"
)

// Manager owns the running Game and swaps it when the player cycles maps.
type Manager struct {
	Config   *simulation.Config
	Game     *Game
	Renderer render.Renderer
	InputMgr render.InputManager
	Log      *zap.SugaredLogger
	BumpCue  Cue

	Maps    []gamescanner.MapEntry
	current int // index into Maps, -1 for the configured world
}

// NewManager creates a manager and loads the configured world.
func NewManager(cfg *simulation.Config, r render.Renderer, input render.InputManager, log *zap.SugaredLogger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	m := &Manager{
		Config:   cfg,
		Renderer: r,
		InputMgr: input,
		Log:      log,
		current:  -1,
	}
	if err := m.load(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// SetMaps sets the maps the player can cycle through.
func (m *Manager) SetMaps(maps []gamescanner.MapEntry) {
	m.Maps = maps
}

// SetBumpCue sets the cue played when a move is blocked.
func (m *Manager) SetBumpCue(c Cue) {
	m.BumpCue = c
	if m.Game != nil {
		m.Game.BumpCue = c
	}
}

// NextMap switches to the next scanned map, wrapping around.
func (m *Manager) NextMap() error {
	if len(m.Maps) == 0 {
		return nil
	}
	next := (m.current + 1) % len(m.Maps)

	cfg := *m.Config
	cfg.Grid.MapPath = m.Maps[next].Path
	if err := m.load(&cfg); err != nil {
		return fmt.Errorf("failed to switch to map %s: %w", m.Maps[next].Name, err)
	}
	m.current = next
	return nil
}

func (m *Manager) load(cfg *simulation.Config) error {
	world, err := LoadWorld(cfg)
	if err != nil {
		return err
	}

	state := NewState(cfg, world)
	g := New(cfg, state, m.Renderer, m.InputMgr, m.Log)
	g.BumpCue = m.BumpCue
	if m.Game != nil {
		g.ShowMinimap = m.Game.ShowMinimap
	}
	m.Game = g

	w, h := state.ScreenSize()
	m.Log.Infow("world loaded", "name", world.Name, "cols", world.Grid.Cols(), "rows", world.Grid.Rows(),
		"width", w, "height", h, "rays", state.Caster.Count)
	return nil
}

// Update updates the current game.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyN) {
		if err := m.NextMap(); err != nil {
			// keep playing the current map
			m.Log.Warnw("map switch failed", "error", err)
		}
	}
	return m.Game.Update()
}

// Draw draws the current game.
func (m *Manager) Draw(screen render.Image) {
	m.Game.Draw(screen)
}

// Layout returns the current map's screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Game.Layout(outsideWidth, outsideHeight)
}
