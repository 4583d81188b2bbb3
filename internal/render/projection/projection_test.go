package projection

import (
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render/lighting"
	"chosenoffset.com/raycaster/internal/world/grid"
)

func newTestProjector() *Projector {
	return New(900, 660, geom.Radians(60), 60, 1, lighting.DefaultModel())
}

func TestPlaneDistance(t *testing.T) {
	p := newTestProjector()
	want := 450 / math.Tan(geom.Radians(30))
	if math.Abs(p.PlaneDistance()-want) > 1e-9 {
		t.Errorf("Expected plane distance %v, got %v", want, p.PlaneDistance())
	}
}

func TestFisheyeCorrectionFlattensWall(t *testing.T) {
	g := grid.Bordered(11, 15, 60)
	c := raycast.NewCaster(geom.Radians(60), 900, 1)
	p := newTestProjector()

	// facing the right wall head on, every column sees the same plane
	origin := geom.Point{X: 450, Y: 330}
	strips := p.Project(c.CastAll(g, origin, 0, nil), 0, nil)
	want := p.StripHeight(390)
	for i, s := range strips {
		if !s.Vertical {
			continue // columns near the edges may see the floor/ceiling walls first
		}
		if math.Abs(s.Height-want) > 1e-6 {
			t.Fatalf("column %d: expected height %v, got %v", i, want, s.Height)
		}
	}
	mid := strips[450]
	if math.Abs(mid.Distance-390) > 1e-6 {
		t.Errorf("Expected corrected distance 390 at center, got %v", mid.Distance)
	}
	if math.Abs(mid.Top-(330-mid.Height/2)) > 1e-9 {
		t.Errorf("Expected strip centered on the horizon, got top %v", mid.Top)
	}
}

func TestProjectStripHeightFormula(t *testing.T) {
	p := newTestProjector()
	rays := []raycast.Ray{{Angle: 0.2, Distance: 100, Found: true}}
	s := p.Project(rays, 0.0, nil)[0]

	corrected := 100 * math.Cos(0.2)
	want := 60 / corrected * p.PlaneDistance()
	if math.Abs(s.Height-want) > 1e-9 {
		t.Errorf("Expected height %v, got %v", want, s.Height)
	}
	if s.Shade != p.Shading.Brightness(corrected, p.PlaneDistance(), false) {
		t.Errorf("Unexpected shade %d", s.Shade)
	}
}

func TestProjectMissIsSafe(t *testing.T) {
	p := newTestProjector()
	rays := []raycast.Ray{
		{Angle: 0, Distance: raycast.NoHit},
		{Angle: 0, Distance: raycast.NoHit, Found: true},
		{Angle: 0, Distance: math.NaN(), Found: true},
	}
	for i, s := range p.Project(rays, 0, nil) {
		if !s.Miss {
			t.Errorf("ray %d: expected a miss strip", i)
		}
		if s.Height != 0 || math.IsNaN(s.Top) {
			t.Errorf("ray %d: expected zero-height finite strip, got %+v", i, s)
		}
		top, bottom := s.Clip(660)
		if top != bottom {
			t.Errorf("ray %d: expected empty span, got [%v, %v)", i, top, bottom)
		}
	}
}

func TestProjectZeroDistanceStaysFinite(t *testing.T) {
	p := newTestProjector()
	s := p.Project([]raycast.Ray{{Distance: 0, Found: true}}, 0, nil)[0]
	if math.IsInf(s.Height, 0) || math.IsNaN(s.Height) || s.Height <= 0 {
		t.Errorf("Expected a finite positive height, got %v", s.Height)
	}
	top, bottom := s.Clip(660)
	if top != 0 || bottom != 660 {
		t.Errorf("Expected clip to full screen, got [%v, %v)", top, bottom)
	}
}

func TestProjectEdgeDarkening(t *testing.T) {
	p := newTestProjector()
	rays := []raycast.Ray{
		{Distance: 100, Found: true, Vertical: false},
		{Distance: 100, Found: true, Vertical: false},
		{Distance: 100, Found: true, Vertical: true},
		{Distance: 100, Found: true, Vertical: true},
	}
	strips := p.Project(rays, 0, nil)
	wantEdge := []bool{false, false, true, false}
	for i, s := range strips {
		if s.Edge != wantEdge[i] {
			t.Errorf("column %d: edge=%v, want %v", i, s.Edge, wantEdge[i])
		}
	}
	if p.Color(strips[2]) != p.Shading.EdgeShade {
		t.Error("Expected edge column to use the edge shade")
	}
	if strips[3].Shade <= strips[1].Shade {
		t.Error("Expected vertical faces to be brighter than horizontal ones")
	}

	p.Shading.EdgeDarkening = false
	for i, s := range p.Project(rays, 0, nil) {
		if s.Edge {
			t.Errorf("column %d: expected no edges with darkening disabled", i)
		}
	}
}

func TestProjectColumnLayout(t *testing.T) {
	p := New(640, 480, geom.Radians(60), 64, 4, lighting.DefaultModel())
	rays := make([]raycast.Ray, 160)
	for i := range rays {
		rays[i] = raycast.Ray{Distance: 200, Found: true}
	}
	strips := p.Project(rays, 0, nil)
	if strips[10].X != 40 || strips[10].Width != 4 {
		t.Errorf("Expected column 10 at x=40 width 4, got x=%v width=%v", strips[10].X, strips[10].Width)
	}
}
