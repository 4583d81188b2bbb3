// Package projection turns ray samples into vertical wall strips on a flat
// projection plane.
package projection

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render/lighting"
)

// minDistance keeps strips finite when the viewer touches a wall.
const minDistance = 1e-3

// Strip is one projected screen column.
type Strip struct {
	X        float64 // left edge in screen pixels
	Width    float64
	Top      float64 // may be negative for strips taller than the screen
	Height   float64
	Distance float64 // fisheye-corrected distance
	Shade    uint8
	Vertical bool
	Edge     bool // wall orientation differs from the previous column
	Miss     bool // no wall was found; nothing to draw
}

// Projector converts ray sets into strips.
type Projector struct {
	ScreenWidth  float64
	ScreenHeight float64
	TileSize     float64
	ColumnWidth  float64
	Shading      lighting.Model

	plane float64
}

// New creates a projector. The projection plane distance is derived once
// from the screen width and field of view.
func New(screenWidth, screenHeight, fov, tileSize, columnWidth float64, shading lighting.Model) *Projector {
	return &Projector{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		TileSize:     tileSize,
		ColumnWidth:  columnWidth,
		Shading:      shading,
		plane:        (screenWidth / 2) / math.Tan(fov/2),
	}
}

// PlaneDistance returns the distance from the viewer to the projection plane.
func (p *Projector) PlaneDistance() float64 {
	return p.plane
}

// CorrectedDistance removes the fisheye curvature from a ray distance.
func CorrectedDistance(r raycast.Ray, heading float64) float64 {
	return r.Distance * math.Cos(r.Angle-heading)
}

// StripHeight returns the on-screen height of a wall at corrected distance d.
func (p *Projector) StripHeight(d float64) float64 {
	return p.TileSize / math.Max(d, minDistance) * p.plane
}

// Project builds one strip per ray. dst is reused when large enough.
func (p *Projector) Project(rays []raycast.Ray, heading float64, dst []Strip) []Strip {
	if cap(dst) < len(rays) {
		dst = make([]Strip, len(rays))
	}
	dst = dst[:len(rays)]

	for i, r := range rays {
		s := Strip{
			X:        float64(i) * p.ColumnWidth,
			Width:    p.ColumnWidth,
			Vertical: r.Vertical,
		}
		d := CorrectedDistance(r, heading)
		if !r.Found || r.Distance == raycast.NoHit || math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			s.Miss = true
			s.Top = p.ScreenHeight / 2
			dst[i] = s
			continue
		}

		s.Distance = d
		s.Height = p.StripHeight(d)
		s.Top = p.ScreenHeight/2 - s.Height/2
		s.Shade = p.Shading.Brightness(d, p.plane, r.Vertical)
		if p.Shading.EdgeDarkening && i > 0 && rays[i-1].Found && rays[i-1].Vertical != r.Vertical {
			s.Edge = true
		}
		dst[i] = s
	}
	return dst
}

// Color returns the fill gray for the strip, honoring edge darkening.
func (p *Projector) Color(s Strip) uint8 {
	if s.Edge {
		return p.Shading.EdgeShade
	}
	return s.Shade
}

// Clip returns the strip's vertical span limited to [0, screenHeight).
func (s Strip) Clip(screenHeight float64) (top, bottom float64) {
	if s.Miss {
		return 0, 0
	}
	top = math.Max(0, s.Top)
	bottom = math.Min(screenHeight, s.Top+s.Height)
	if bottom < top {
		bottom = top
	}
	return top, bottom
}
