// Package player owns the viewer's continuous position and heading and
// resolves movement intents against the occupancy grid.
package player

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Occupancy answers wall-presence queries at continuous coordinates.
type Occupancy interface {
	HasWallAt(x, y float64) bool
}

// Intent is the movement requested for the next update. Each axis is one of
// -1, 0 or +1. Forward moves along the heading, Strafe along heading − 90°.
type Intent struct {
	Forward int
	Strafe  int
}

// Player is the viewer in the world.
type Player struct {
	Pos   geom.Point
	Angle float64 // radians, not wrapped on write

	Intent Intent

	MoveSpeed     float64 // world units per tick
	RotationSpeed float64 // radians per unit of look input
}

// New creates a player at pos facing angle.
func New(pos geom.Point, angle, moveSpeed, rotationSpeed float64) *Player {
	return &Player{
		Pos:           pos,
		Angle:         angle,
		MoveSpeed:     moveSpeed,
		RotationSpeed: rotationSpeed,
	}
}

// Heading returns the view angle wrapped into [0, 2π).
func (p *Player) Heading() float64 {
	return geom.NormalizeAngle(p.Angle)
}

// SetIntent records the movement intent, clamping each axis to -1..1.
func (p *Player) SetIntent(forward, strafe int) {
	p.Intent = Intent{Forward: clampUnit(forward), Strafe: clampUnit(strafe)}
}

// Rotate turns the player by delta radians.
func (p *Player) Rotate(delta float64) {
	p.Angle += delta
}

// Look turns the player by a raw look amount (e.g. mouse pixels) scaled by
// RotationSpeed.
func (p *Player) Look(amount float64) {
	p.Rotate(amount * p.RotationSpeed)
}

// Candidate returns the position the current intent would move to.
func (p *Player) Candidate() geom.Point {
	forward := float64(p.Intent.Forward) * p.MoveSpeed
	strafe := float64(p.Intent.Strafe) * p.MoveSpeed
	side := p.Angle - math.Pi/2

	return geom.Point{
		X: p.Pos.X + math.Cos(p.Angle)*forward + math.Cos(side)*strafe,
		Y: p.Pos.Y + math.Sin(p.Angle)*forward + math.Sin(side)*strafe,
	}
}

// Update applies the intent. The move is all-or-nothing: only the
// destination point is tested, so a fast diagonal step can cross a thin
// wall corner. Returns true if the position changed.
func (p *Player) Update(g Occupancy) bool {
	if p.Intent == (Intent{}) {
		return false
	}
	next := p.Candidate()
	if g.HasWallAt(next.X, next.Y) {
		return false
	}
	p.Pos = next
	return true
}

func clampUnit(v int) int {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
