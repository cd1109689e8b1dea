// Package gridlife is the flat-array toroidal oracle the node-based
// evaluator is validated against.
package gridlife

import (
	"quadlife/internal/core"
)

// Grid implements Conway's Game of Life on a flat BoolGrid with toroidal
// wrapping. It exists to validate the quadtree evaluator and is
// deliberately naive.
type Grid struct {
	grid *core.BoolGrid
}

// Create builds an oracle from a square grid.
func Create(rows [][]bool) (*Grid, error) {
	if err := core.CheckSquare(rows); err != nil {
		return nil, err
	}
	return &Grid{grid: core.NewBoolGridFromRows(rows)}, nil
}

// Name returns the evaluator identifier.
func (g *Grid) Name() string { return "gridlife" }

// Size returns the grid side length.
func (g *Grid) Size() int64 { return int64(g.grid.Side) }

// GenerationStep reports how many generations one Next covers.
func (g *Grid) GenerationStep() int64 { return 1 }

// Next applies Conway's rule at every cell, wrapping neighbors at the
// boundary, and returns the advanced oracle.
func (g *Grid) Next() core.Life {
	cur := g.grid
	nxt := core.NewBoolGrid(cur.Side)
	out := nxt.Cells()
	for row := 0; row < cur.Side; row++ {
		for col := 0; col < cur.Side; col++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := cur.Wrap(row+dr, col+dc)
					if cur.At(nr, nc) {
						neighbors++
					}
				}
			}
			alive := cur.At(row, col)
			out[cur.Index(row, col)] = neighbors == 3 || (alive && neighbors == 2)
		}
	}
	return &Grid{grid: nxt}
}

// ExtractGrid returns a copy of the current configuration.
func (g *Grid) ExtractGrid() [][]bool { return g.grid.Rows() }

// AliveCoords lists live cells in row, then column order.
func (g *Grid) AliveCoords() []core.Coord {
	var out []core.Coord
	for r := 0; r < g.grid.Side; r++ {
		for c := 0; c < g.grid.Side; c++ {
			if g.grid.At(r, c) {
				out = append(out, core.Coord{Row: int64(r), Col: int64(c)})
			}
		}
	}
	return out
}

// Signature returns the translation-normalized canonical string.
func (g *Grid) Signature() string {
	return core.Signature(g.AliveCoords())
}

// AliveCount returns the population.
func (g *Grid) AliveCount() int64 {
	var n int64
	for _, alive := range g.grid.Cells() {
		if alive {
			n++
		}
	}
	return n
}

// ExtraInfo reports nothing; the oracle has no interesting internals.
func (g *Grid) ExtraInfo() string { return "" }
