package game

import (
	"errors"

	"go.uber.org/zap"

	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/simulation"
)

// ErrQuit is returned from Update when the player asks to leave.
var ErrQuit = errors.New("quit requested")

// Cue is a short sound played on a game event.
type Cue interface {
	Play()
}

// Game drives a State from keyboard and mouse input and draws it.
type Game struct {
	State    *State
	Renderer render.Renderer
	InputMgr render.InputManager
	Log      *zap.SugaredLogger
	BumpCue  Cue // optional

	KeyRotationSpeed float64
	MinimapScale     float64
	ShowMinimap      bool

	floor       render.Image
	lastCursorX int
	cursorValid bool
	wasBlocked  bool
}

// New creates a game for an already built state.
func New(cfg *simulation.Config, state *State, r render.Renderer, input render.InputManager, log *zap.SugaredLogger) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Game{
		State:            state,
		Renderer:         r,
		InputMgr:         input,
		Log:              log,
		KeyRotationSpeed: cfg.Movement.KeyRotationSpeed,
		MinimapScale:     cfg.View.MinimapScale,
		ShowMinimap:      cfg.View.MinimapScale > 0,
	}
}

// Update handles one tick of input and advances the simulation.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		if !g.InputMgr.IsCursorCaptured() {
			return ErrQuit
		}
		g.InputMgr.SetCursorCaptured(false)
		g.cursorValid = false
	}

	if !g.InputMgr.IsCursorCaptured() && g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.InputMgr.SetCursorCaptured(true)
		g.cursorValid = false
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.ShowMinimap = !g.ShowMinimap
	}

	res := g.State.Tick(g.readInput())

	if res.Blocked && !g.wasBlocked {
		g.Log.Debugw("move blocked", "x", g.State.Player.Pos.X, "y", g.State.Player.Pos.Y, "tick", g.State.TickCount)
		if g.BumpCue != nil {
			g.BumpCue.Play()
		}
	}
	g.wasBlocked = res.Blocked
	return nil
}

// readInput polls the input manager into an Input.
func (g *Game) readInput() Input {
	var in Input
	if g.InputMgr.IsKeyPressed(render.KeyW) {
		in.Forward++
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) {
		in.Forward--
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) {
		in.Strafe++
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) {
		in.Strafe--
	}
	if g.InputMgr.IsKeyPressed(render.KeyLeft) {
		in.Turn -= g.KeyRotationSpeed
	}
	if g.InputMgr.IsKeyPressed(render.KeyRight) {
		in.Turn += g.KeyRotationSpeed
	}

	// Mouse look only while captured, from horizontal cursor movement
	if g.InputMgr.IsCursorCaptured() {
		x, _ := g.InputMgr.GetCursorPosition()
		if g.cursorValid {
			in.Turn += float64(x-g.lastCursorX) * g.State.Player.RotationSpeed
		}
		g.lastCursorX = x
		g.cursorValid = true
	}
	return in
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.State.ScreenSize()
}
