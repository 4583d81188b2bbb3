// Package raycast finds, for a cast angle, the nearest wall along the ray by
// stepping through successive grid-line crossings (grid DDA).
//
// Two independent scans are made per ray: one against horizontal grid lines
// and one against vertical grid lines. The nearer hit wins; exact ties are
// reported as horizontal hits.
package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// NoHit is the distance reported by a scan (or a ray) that found no wall.
const NoHit = math.MaxFloat64

// Map is the read-only view of the world a cast needs.
type Map interface {
	HasWallAt(x, y float64) bool
	InWindow(p geom.Point) bool
	TileSize() float64
}

// Ray is the result of casting one screen column.
type Ray struct {
	Angle    float64    // cast angle in [0, 2π)
	Hit      geom.Point // wall hit point (origin when nothing was found)
	Distance float64    // Euclidean distance to Hit, NoHit on a miss
	Vertical bool       // hit lies on a vertical grid line
	Found    bool
}

// quadrant holds the facing classification of a cast angle.
type quadrant struct {
	down  bool // 0 < a < π
	right bool // a > 1.5π || a < 0.5π
}

func classify(angle float64) quadrant {
	return quadrant{
		down:  angle > 0 && angle < math.Pi,
		right: angle > 1.5*math.Pi || angle < 0.5*math.Pi,
	}
}

// scan is the outcome of one grid-line walk.
type scan struct {
	found bool
	point geom.Point
}

// Cast casts a single ray from origin. angle is normalized before use.
func Cast(m Map, origin geom.Point, angle float64) Ray {
	angle = geom.NormalizeAngle(angle)
	q := classify(angle)
	tan := math.Tan(angle)

	var hor, ver scan
	// A ray travelling exactly along the x axis never crosses a horizontal
	// grid line, and one along the y axis never crosses a vertical one.
	if angle != 0 && angle != math.Pi {
		hor = scanHorizontal(m, origin, q, tan)
	}
	if angle != math.Pi/2 && angle != 1.5*math.Pi {
		ver = scanVertical(m, origin, q, tan)
	}

	r := resolve(origin, hor, ver)
	r.Angle = angle
	return r
}

// scanHorizontal walks the crossings of the ray with horizontal grid lines.
func scanHorizontal(m Map, origin geom.Point, q quadrant, tan float64) scan {
	tile := m.TileSize()

	var next, step geom.Point
	next.Y = math.Floor(origin.Y/tile) * tile
	if q.down {
		next.Y += tile
	}
	next.X = origin.X + (next.Y-origin.Y)/tan

	step.Y = tile
	if !q.down {
		step.Y = -tile
	}
	step.X = tile / tan
	if (q.right && step.X < 0) || (!q.right && step.X > 0) {
		step.X = -step.X
	}

	// sample the tile on the far side of the line
	nudge := 0.0
	if !q.down {
		nudge = 1
	}
	for m.InWindow(next) {
		if m.HasWallAt(next.X, next.Y-nudge) {
			return scan{found: true, point: next}
		}
		next = next.Add(step)
	}
	return scan{}
}

// scanVertical walks the crossings of the ray with vertical grid lines.
func scanVertical(m Map, origin geom.Point, q quadrant, tan float64) scan {
	tile := m.TileSize()

	var next, step geom.Point
	next.X = math.Floor(origin.X/tile) * tile
	if q.right {
		next.X += tile
	}
	next.Y = origin.Y + (next.X-origin.X)*tan

	step.X = tile
	if !q.right {
		step.X = -tile
	}
	step.Y = tile * tan
	if (q.down && step.Y < 0) || (!q.down && step.Y > 0) {
		step.Y = -step.Y
	}

	nudge := 0.0
	if !q.right {
		nudge = 1
	}
	for m.InWindow(next) {
		if m.HasWallAt(next.X-nudge, next.Y) {
			return scan{found: true, point: next}
		}
		next = next.Add(step)
	}
	return scan{}
}

// resolve picks the nearer of the two scans. The vertical hit only wins when
// it is strictly closer.
func resolve(origin geom.Point, hor, ver scan) Ray {
	horDist, verDist := NoHit, NoHit
	if hor.found {
		horDist = geom.Distance(origin, hor.point)
	}
	if ver.found {
		verDist = geom.Distance(origin, ver.point)
	}

	if !hor.found && !ver.found {
		return Ray{Hit: origin, Distance: NoHit}
	}
	if verDist < horDist {
		return Ray{Hit: ver.point, Distance: verDist, Vertical: true, Found: true}
	}
	return Ray{Hit: hor.point, Distance: horDist, Found: true}
}
