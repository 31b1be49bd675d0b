// Package core provides fundamental types for the expert agent: the tile
// grid snapshot, positions, buttons and actions. It contains no external
// dependencies to keep decision logic pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Tile is a symbolic tile-type code as reported by the environment's
// game area. Codes match the Game Boy tile classes the agent cares about;
// unknown codes pass through untouched.
type Tile uint8

const (
	TileEmpty  Tile = 0
	TileMario  Tile = 1
	TileCoin   Tile = 5
	TileBlock  Tile = 10
	TileGround Tile = 12
	TilePipe   Tile = 14
	TileGoomba Tile = 15
)

// String returns a short name for known tile codes.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileMario:
		return "mario"
	case TileCoin:
		return "coin"
	case TileBlock:
		return "block"
	case TileGround:
		return "ground"
	case TilePipe:
		return "pipe"
	case TileGoomba:
		return "goomba"
	default:
		return "tile"
	}
}

// Position is a cell coordinate in the grid: X is the column, Y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a read-only snapshot of the visible game screen as tile codes.
// It is refreshed once per decision tick; no history is retained.
type Grid struct {
	width  int
	height int
	cells  [][]Tile
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(width, height int) Grid {
	cells := make([][]Tile, height)
	for y := range cells {
		cells[y] = make([]Tile, width)
	}
	return Grid{width: width, height: height, cells: cells}
}

// GridFromRows builds a grid from row-major tile data.
// Rows are copied; ragged input is squared off with empty tiles.
func GridFromRows(rows [][]Tile) Grid {
	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g := NewGrid(width, height)
	for y, row := range rows {
		copy(g.cells[y], row)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// At returns the tile at (x, y). Out-of-bounds reads return TileEmpty.
func (g Grid) At(x, y int) Tile {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return TileEmpty
	}
	return g.cells[y][x]
}

// Set places a tile at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = t
}

// Find returns the positions of every cell matching the given tile code,
// in row-major order. An empty result is normal and expected.
func (g Grid) Find(t Tile) []Position {
	var out []Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == t {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// Rows returns a copy of the grid as row-major tile data.
// Used by the replay recorder; mutations do not affect the grid.
func (g Grid) Rows() [][]Tile {
	rows := make([][]Tile, g.height)
	for y := range rows {
		rows[y] = make([]Tile, g.width)
		copy(rows[y], g.cells[y])
	}
	return rows
}

// Equal reports whether two grids have identical dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the grid as digits for debugging and log output.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width*3 + 1))
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteRune(' ')
			}
			fmt.Fprintf(&sb, "%2d", g.cells[y][x])
		}
	}
	return sb.String()
}
