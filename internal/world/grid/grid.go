// Package grid provides the occupancy map the raycaster walks through.
// The map is a fixed rows×cols array of tiles; anything outside it is wall.
package grid

import (
	"fmt"
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Grid is a row-major wall/empty tile map with its origin at the top-left.
type Grid struct {
	rows     int
	cols     int
	tileSize float64
	walls    []bool
}

// New builds a grid from rows of tile values (non-zero means wall).
func New(tileSize float64, cells [][]int) (*Grid, error) {
	if tileSize <= 0 || math.IsNaN(tileSize) || math.IsInf(tileSize, 0) {
		return nil, fmt.Errorf("invalid tile size: %v", tileSize)
	}
	rows := len(cells)
	if rows == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}
	cols := len(cells[0])
	if cols == 0 {
		return nil, fmt.Errorf("grid has no columns")
	}

	g := &Grid{
		rows:     rows,
		cols:     cols,
		tileSize: tileSize,
		walls:    make([]bool, rows*cols),
	}
	for y, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("grid width mismatch at row %d: expected %d, got %d", y, cols, len(row))
		}
		for x, v := range row {
			g.walls[y*cols+x] = v != 0
		}
	}
	return g, nil
}

// Bordered returns an empty rows×cols grid ringed by a single layer of walls.
func Bordered(rows, cols int, tileSize float64) *Grid {
	g, err := New(tileSize, borderedCells(rows, cols))
	if err != nil {
		panic(err)
	}
	return g
}

// Default returns the built-in 15×11 map.
func Default(tileSize float64) *Grid {
	g, err := New(tileSize, DefaultCells(DefaultRows, DefaultCols))
	if err != nil {
		panic(err)
	}
	return g
}

// Built-in map dimensions.
const (
	DefaultRows = 11
	DefaultCols = 15
)

// DefaultCells returns the built-in map when asked for its dimensions and
// an empty bordered room of any other size.
func DefaultCells(rows, cols int) [][]int {
	if rows != DefaultRows || cols != DefaultCols {
		return borderedCells(rows, cols)
	}
	return [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1},
		{1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
}

func borderedCells(rows, cols int) [][]int {
	cells := make([][]int, rows)
	for y := range cells {
		cells[y] = make([]int, cols)
		for x := range cells[y] {
			if y == 0 || y == rows-1 || x == 0 || x == cols-1 {
				cells[y][x] = 1
			}
		}
	}
	return cells
}

// Rows returns the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// TileSize returns the edge length of one tile in world units.
func (g *Grid) TileSize() float64 { return g.tileSize }

// Width returns the playable window width (cols × tile size).
func (g *Grid) Width() float64 { return float64(g.cols) * g.tileSize }

// Height returns the playable window height (rows × tile size).
func (g *Grid) Height() float64 { return float64(g.rows) * g.tileSize }

// InWindow reports whether p lies inside the inclusive window rectangle.
// NaN coordinates are never inside.
func (g *Grid) InWindow(p geom.Point) bool {
	return p.X >= 0 && p.X <= g.Width() && p.Y >= 0 && p.Y <= g.Height()
}

// TileOf returns the tile containing p.
func (g *Grid) TileOf(p geom.Point) geom.Coord {
	return geom.Coord{
		X: int(math.Floor(p.X / g.tileSize)),
		Y: int(math.Floor(p.Y / g.tileSize)),
	}
}

// TileAt reports whether the tile at (col, row) is a wall. Out-of-range
// tiles are walls.
func (g *Grid) TileAt(col, row int) bool {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return true
	}
	return g.walls[row*g.cols+col]
}

// HasWallAt reports whether the continuous point (x, y) is blocked: outside
// the window, or inside an occupied (or nonexistent) tile.
func (g *Grid) HasWallAt(x, y float64) bool {
	p := geom.Point{X: x, Y: y}
	if !g.InWindow(p) {
		return true
	}
	c := g.TileOf(p)
	return g.TileAt(c.X, c.Y)
}
