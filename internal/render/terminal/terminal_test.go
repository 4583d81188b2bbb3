package terminal

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/simulation"
)

func newTestDriver(t *testing.T) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 24)

	cfg := simulation.DefaultConfig()
	w, err := game.LoadWorld(cfg)
	if err != nil {
		t.Fatalf("Failed to load world: %v", err)
	}
	return New(screen, game.NewState(cfg, w), cfg.Movement.KeyRotationSpeed, nil), screen
}

func rowText(s tcell.Screen, y int) string {
	cols, _ := s.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawWallsAndStatus(t *testing.T) {
	d, screen := newTestDriver(t)
	defer screen.Fini()

	d.Draw()

	if status := rowText(screen, 0); !strings.Contains(status, "heading 90°") {
		t.Errorf("Expected status line with heading, got %q", status)
	}

	// every column hits a wall in the default map, so the horizon row is solid
	horizon := rowText(screen, 1+23/2)
	for x, r := range horizon {
		if !strings.ContainsRune("█▓▒░", r) {
			t.Fatalf("column %d: expected a wall glyph at the horizon, got %q", x, r)
		}
	}

	if bottom := rowText(screen, 23); !strings.Contains(bottom, ".") {
		t.Errorf("Expected floor on the bottom row, got %q", bottom)
	}
}

func TestHandleEventAndStep(t *testing.T) {
	d, screen := newTestDriver(t)
	defer screen.Fini()

	if d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatal("Expected w not to quit")
	}
	res := d.Step()
	if !res.Moved {
		t.Fatalf("Expected a move, got %+v", res)
	}
	if math.Abs(d.state.Player.Pos.Y-333) > 1e-9 {
		t.Errorf("Expected y=333, got %v", d.state.Player.Pos.Y)
	}

	// impulses last a single tick
	res = d.Step()
	if res.Moved {
		t.Error("Expected no move without a new key press")
	}

	d.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	before := d.state.Player.Angle
	d.Step()
	if math.Abs(d.state.Player.Angle-before-0.03) > 1e-12 {
		t.Errorf("Expected right arrow to turn 0.03, got %v", d.state.Player.Angle-before)
	}
}

func TestQuitKeys(t *testing.T) {
	d, screen := newTestDriver(t)
	defer screen.Fini()

	if !d.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected escape to quit")
	}
	if !d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected q to quit")
	}
}

func TestRunStopsOnContext(t *testing.T) {
	d, _ := newTestDriver(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.Run(ctx, 60)
	if err != context.DeadlineExceeded {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if d.state.TickCount == 0 {
		t.Error("Expected at least one tick")
	}
}

func TestRunRejectsBadTPS(t *testing.T) {
	d, screen := newTestDriver(t)
	defer screen.Fini()
	if err := d.Run(context.Background(), 0); err == nil {
		t.Error("Expected error for zero tps")
	}
}

func TestShadeRune(t *testing.T) {
	tests := []struct {
		shade uint8
		want  rune
	}{
		{255, '█'},
		{200, '█'},
		{180, '▓'},
		{120, '▒'},
		{0x22, '░'},
	}
	for _, tt := range tests {
		if got := shadeRune(tt.shade); got != tt.want {
			t.Errorf("shadeRune(%d) = %q, want %q", tt.shade, got, tt.want)
		}
	}
}
