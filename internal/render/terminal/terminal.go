// Package terminal draws the raycaster into a character-cell terminal.
// Each terminal column samples one ray; wall brightness picks both the block
// glyph and its true-color foreground.
package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/render/lighting"
)

var (
	skyStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	hudStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow)
)

// Driver feeds terminal key events into a game.State and draws its strips.
type Driver struct {
	screen tcell.Screen
	state  *game.State
	log    *zap.SugaredLogger

	KeyRotationSpeed float64
	BumpCue          game.Cue

	mu         sync.Mutex
	pending    game.Input // impulses collected since the last tick
	wasBlocked bool
}

// New creates a driver; the screen must already be initialized.
func New(screen tcell.Screen, state *game.State, keyRotationSpeed float64, log *zap.SugaredLogger) *Driver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	screen.HideCursor()
	screen.SetStyle(skyStyle)
	return &Driver{
		screen:           screen,
		state:            state,
		log:              log,
		KeyRotationSpeed: keyRotationSpeed,
	}
}

// HandleEvent applies one terminal event. Terminals report presses, not
// held keys, so each press moves or turns for a single tick. Returns true
// when the player asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			d.pending.Forward = 1
		case tcell.KeyDown:
			d.pending.Forward = -1
		case tcell.KeyLeft:
			d.pending.Turn -= d.KeyRotationSpeed
		case tcell.KeyRight:
			d.pending.Turn += d.KeyRotationSpeed
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'w':
				d.pending.Forward = 1
			case 's':
				d.pending.Forward = -1
			case 'a':
				d.pending.Strafe = 1
			case 'd':
				d.pending.Strafe = -1
			case 'j':
				d.pending.Turn -= d.KeyRotationSpeed
			case 'l':
				d.pending.Turn += d.KeyRotationSpeed
			}
		}
	}
	return false
}

// Step advances the state by one tick with the collected input and redraws.
func (d *Driver) Step() game.TickResult {
	d.mu.Lock()
	in := d.pending
	d.pending = game.Input{}
	d.mu.Unlock()

	res := d.state.Tick(in)
	if res.Blocked && !d.wasBlocked && d.BumpCue != nil {
		d.BumpCue.Play()
	}
	d.wasBlocked = res.Blocked

	d.Draw()
	return res
}

// Draw renders the current strips. The top row is a status line.
func (d *Driver) Draw() {
	cols, rows := d.screen.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	d.screen.Clear()

	view := rows - 1
	strips := d.state.Strips
	p := d.state.Projector
	for x := 0; x < cols; x++ {
		top, bottom := view/2, view/2
		var style tcell.Style
		var glyph rune
		if len(strips) > 0 {
			s := strips[x*len(strips)/cols]
			if !s.Miss {
				t, b := s.Clip(p.ScreenHeight)
				top = 1 + int(t/p.ScreenHeight*float64(view))
				bottom = 1 + int(b/p.ScreenHeight*float64(view))
				shade := p.Color(s)
				glyph = shadeRune(shade)
				style = tcell.StyleDefault.Background(tcell.ColorBlack).
					Foreground(tcell.NewRGBColor(int32(shade), int32(shade), int32(shade)))
			}
		}

		for y := 1; y < rows; y++ {
			switch {
			case y >= top && y < bottom:
				d.screen.SetContent(x, y, glyph, nil, style)
			case y >= 1+view/2:
				c := lighting.FloorColor(y-1, view)
				floor := tcell.StyleDefault.Background(tcell.ColorBlack).
					Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
				d.screen.SetContent(x, y, '.', nil, floor)
			}
		}
	}

	pl := d.state.Player
	status := fmt.Sprintf("x %.0f y %.0f  heading %.0f°  tick %d  [wasd move, j/l or arrows turn, q quit]",
		pl.Pos.X, pl.Pos.Y, geom.Degrees(pl.Heading()), d.state.TickCount)
	drawText(d.screen, 0, 0, status, hudStyle)

	d.screen.Show()
}

// shadeRune maps a wall brightness onto a block glyph.
func shadeRune(shade uint8) rune {
	switch {
	case shade >= 200:
		return '█'
	case shade >= 150:
		return '▓'
	case shade >= 100:
		return '▒'
	default:
		return '░'
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	cols, _ := s.Size()
	for _, r := range text {
		if x >= cols {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run polls terminal events and ticks at tps until the context is done or
// the player quits. The screen is finalized before returning.
func (d *Driver) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		return fmt.Errorf("invalid tps: %d", tps)
	}
	defer d.screen.Fini()

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			if d.HandleEvent(ev) {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			d.log.Infow("quit", "ticks", d.state.TickCount)
			return nil
		case <-ticker.C:
			d.Step()
		}
	}
}
