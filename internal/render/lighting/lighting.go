// Package lighting holds the cheap shading model used for wall strips and
// the floor: linear distance falloff plus a fixed boost on one wall
// orientation to fake directional light.
package lighting

import (
	"image/color"
	"math"
)

// Model describes how wall strips are shaded.
type Model struct {
	MaxBrightness float64 // brightness of a wall at distance zero
	Falloff       float64 // brightness lost per projection-plane distance
	VerticalBoost float64 // added to vertical wall faces

	EdgeDarkening bool  // darken the column where wall orientation changes
	EdgeShade     uint8 // gray level used for darkened edges
}

// DefaultModel returns the stock shading values.
func DefaultModel() Model {
	return Model{
		MaxBrightness: 255,
		Falloff:       150,
		VerticalBoost: 50,
		EdgeDarkening: true,
		EdgeShade:     0x22,
	}
}

// Brightness returns the gray level of a wall seen at the given corrected
// distance. plane is the projection plane distance.
func (m Model) Brightness(distance, plane float64, vertical bool) uint8 {
	if plane <= 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return 0
	}
	b := m.MaxBrightness - distance*m.Falloff/plane
	if vertical {
		b += m.VerticalBoost
	}
	return clampByte(math.Round(b))
}

// Gray returns an opaque gray color of the given level.
func Gray(level uint8) color.RGBA {
	return color.RGBA{level, level, level, 255}
}

// Palette used by the frame drivers.
var (
	Dark  = color.RGBA{0x22, 0x22, 0x22, 255}
	Light = color.RGBA{0xff, 0xff, 0xff, 255}
)

// FloorColor returns the floor color for screen row y. The floor runs from
// the horizon (half height) to the bottom edge, blending from half way
// between Dark and Light at the horizon to Light at the bottom.
func FloorColor(y, screenHeight int) color.RGBA {
	half := float64(screenHeight) / 2
	span := float64(screenHeight) - half
	t := 0.5
	if span > 0 {
		t += 0.5 * (float64(y) - half) / span
	}
	return Lerp(Dark, Light, t)
}

// Lerp blends two colors; t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return clampByte(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
