package stream

import (
	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/render/projection"
)

// InputMessage is a client intent, sent as a websocket text message.
// Example: {"type":"input","forward":1,"strafe":0,"turn":0.05}
type InputMessage struct {
	Type    string  `json:"type"`
	Forward int     `json:"forward"`
	Strafe  int     `json:"strafe"`
	Turn    float64 `json:"turn"` // radians
	Seq     int64   `json:"seq,omitempty"`
}

// PlayerView is the player pose included in every frame.
type PlayerView struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"` // radians in [0, 2π)
}

// Column is one projected wall strip. Height 0 means nothing was hit.
type Column struct {
	Top    float64 `json:"t"`
	Height float64 `json:"h"`
	Shade  uint8   `json:"s"`
	Vert   bool    `json:"v,omitempty"`
}

// FrameMessage is broadcast to every client after each tick.
type FrameMessage struct {
	Type    string     `json:"type"`
	Tick    uint64     `json:"tick"`
	Seq     int64      `json:"seq,omitempty"` // last input applied
	Moved   bool       `json:"moved"`
	Blocked bool       `json:"blocked"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Player  PlayerView `json:"player"`
	Columns []Column   `json:"columns"`
}

// mergeInputs folds every intent received since the last tick into one.
// Turns add up; the latest movement wins.
func mergeInputs(msgs []InputMessage) (game.Input, int64) {
	var in game.Input
	var seq int64
	for _, m := range msgs {
		in.Forward = m.Forward
		in.Strafe = m.Strafe
		in.Turn += m.Turn
		if m.Seq > seq {
			seq = m.Seq
		}
	}
	return in, seq
}

// buildFrame samples at most maxColumns strips evenly across the screen.
func buildFrame(s *game.State, res game.TickResult, seq int64, maxColumns int) FrameMessage {
	w, h := s.ScreenSize()
	f := FrameMessage{
		Type:    "frame",
		Tick:    s.TickCount,
		Seq:     seq,
		Moved:   res.Moved,
		Blocked: res.Blocked,
		Width:   w,
		Height:  h,
		Player: PlayerView{
			X:       s.Player.Pos.X,
			Y:       s.Player.Pos.Y,
			Heading: geom.NormalizeAngle(s.Player.Angle),
		},
	}

	n := len(s.Strips)
	if maxColumns <= 0 || maxColumns > n {
		maxColumns = n
	}
	f.Columns = make([]Column, maxColumns)
	for i := range f.Columns {
		f.Columns[i] = column(s.Projector, s.Strips[i*n/maxColumns])
	}
	return f
}

func column(p *projection.Projector, s projection.Strip) Column {
	if s.Miss {
		return Column{Top: p.ScreenHeight / 2}
	}
	return Column{Top: s.Top, Height: s.Height, Shade: p.Color(s), Vert: s.Vertical}
}
