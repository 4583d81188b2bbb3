package raycast

import (
	"chosenoffset.com/raycaster/internal/core/geom"
	"golang.org/x/sync/errgroup"
)

// Caster casts one ray per screen column across the field of view.
type Caster struct {
	FOV     float64 // total angular width in radians
	Count   int     // number of columns
	Workers int     // goroutines used by CastAll; <= 1 casts inline
}

// NewCaster creates a caster for count columns spanning fov radians.
func NewCaster(fov float64, count, workers int) *Caster {
	return &Caster{FOV: fov, Count: count, Workers: workers}
}

// AngleStep returns the angular distance between adjacent columns.
func (c *Caster) AngleStep() float64 {
	if c.Count <= 0 {
		return 0
	}
	return c.FOV / float64(c.Count)
}

// ColumnAngle returns the normalized cast angle of column i for a heading.
// Column 0 is heading − FOV/2; the last column stops one step short of
// heading + FOV/2.
func (c *Caster) ColumnAngle(heading float64, i int) float64 {
	return geom.NormalizeAngle(heading - c.FOV/2 + float64(i)*c.AngleStep())
}

// CastAll recomputes every column for the given origin and heading. dst is
// reused when it has enough capacity.
func (c *Caster) CastAll(m Map, origin geom.Point, heading float64, dst []Ray) []Ray {
	if cap(dst) < c.Count {
		dst = make([]Ray, c.Count)
	}
	dst = dst[:c.Count]

	if c.Workers <= 1 || c.Count < c.Workers {
		c.castRange(m, origin, heading, dst, 0, c.Count)
		return dst
	}

	// every column writes only its own slot, so chunks need no locking
	var eg errgroup.Group
	chunk := (c.Count + c.Workers - 1) / c.Workers
	for start := 0; start < c.Count; start += chunk {
		start := start
		end := min(start+chunk, c.Count)
		eg.Go(func() error {
			c.castRange(m, origin, heading, dst, start, end)
			return nil
		})
	}
	_ = eg.Wait()
	return dst
}

func (c *Caster) castRange(m Map, origin geom.Point, heading float64, dst []Ray, start, end int) {
	for i := start; i < end; i++ {
		dst[i] = Cast(m, origin, c.ColumnAngle(heading, i))
	}
}
