package core

import "fmt"

// BoolGrid stores a square 2D grid of cell states in row-major order. It
// is the common carrier between [][]bool input, the flat oracle and the
// quadtree lifting.
type BoolGrid struct {
	Side int
	data []bool
}

// NewBoolGrid allocates a dead square grid with the given side length.
func NewBoolGrid(side int) *BoolGrid {
	if side <= 0 {
		side = 1
	}
	return &BoolGrid{Side: side, data: make([]bool, side*side)}
}

// NewBoolGridFromRows copies a square [][]bool into a BoolGrid. Rows must
// already be validated with CheckSquare.
func NewBoolGridFromRows(rows [][]bool) *BoolGrid {
	g := NewBoolGrid(len(rows))
	for r, row := range rows {
		copy(g.data[r*g.Side:(r+1)*g.Side], row)
	}
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for (row, col).
func (g *BoolGrid) Index(row, col int) int { return row*g.Side + col }

// At reports the cell state at (row, col).
func (g *BoolGrid) At(row, col int) bool { return g.data[row*g.Side+col] }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BoolGrid) Wrap(row, col int) (int, int) {
	row = (row%g.Side + g.Side) % g.Side
	col = (col%g.Side + g.Side) % g.Side
	return row, col
}

// Rows returns the grid as a freshly allocated [][]bool.
func (g *BoolGrid) Rows() [][]bool {
	rows := make([][]bool, g.Side)
	for r := 0; r < g.Side; r++ {
		rows[r] = append([]bool(nil), g.data[r*g.Side:(r+1)*g.Side]...)
	}
	return rows
}

// CheckSquare validates that the grid is square and non-empty.
func CheckSquare(grid [][]bool) error {
	if len(grid) == 0 {
		return fmt.Errorf("grid must have at least one row")
	}
	for r, row := range grid {
		if len(row) != len(grid) {
			return fmt.Errorf("grid is not square: row %d has %d cells, want %d", r, len(row), len(grid))
		}
	}
	return nil
}

// PadToPow2 returns the grid padded with dead cells on the bottom and right
// so its side becomes the next power of two, never below minSide. Grids
// that already qualify are returned unchanged.
func PadToPow2(grid [][]bool, minSide int) [][]bool {
	side := Pow2Ceil(len(grid))
	if side < minSide {
		side = Pow2Ceil(minSide)
	}
	if side == len(grid) {
		return grid
	}
	out := make([][]bool, side)
	for r := range out {
		out[r] = make([]bool, side)
		if r < len(grid) {
			copy(out[r], grid[r])
		}
	}
	return out
}

// Pow2Ceil returns the smallest power of two that is >= n (and >= 1).
func Pow2Ceil(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
