// Package patterns seeds initial Life configurations as square bool grids.
package patterns

import (
	"fmt"

	"quadlife/pkg/core"
)

// cells are (row, col) offsets from the pattern anchor.
var library = map[string][][2]int{
	"blinker": {{0, 0}, {0, 1}, {0, 2}},
	"glider":  {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	// R-pentomino:
	//  .##
	//  ##.
	//  .#.
	"r-pentomino": {{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
}

// Names lists the available pattern names, including the seeded "random"
// fill that only Grid accepts.
func Names() []string {
	return []string{"blinker", "glider", "r-pentomino", "random"}
}

// Grid places the named pattern on a dead side x side grid. Deterministic
// patterns are anchored near the center; "random" is a seeded coin-flip
// fill of the whole grid.
func Grid(name string, side int, seed int64) ([][]bool, error) {
	if side <= 0 {
		return nil, fmt.Errorf("patterns: side must be positive, got %d", side)
	}
	grid := make([][]bool, side)
	for r := range grid {
		grid[r] = make([]bool, side)
	}
	if name == "random" {
		core.NewRNG(seed).FillBool(grid)
		return grid, nil
	}
	cells, ok := library[name]
	if !ok {
		return nil, fmt.Errorf("patterns: unknown pattern %q", name)
	}
	row, col := side/2-1, side/2-1
	for _, c := range cells {
		r, cc := row+c[0], col+c[1]
		if r < 0 || r >= side || cc < 0 || cc >= side {
			return nil, fmt.Errorf("patterns: %q does not fit a side of %d", name, side)
		}
		grid[r][cc] = true
	}
	return grid, nil
}

// At places the named deterministic pattern with its anchor at (row, col).
func At(name string, side, row, col int) ([][]bool, error) {
	cells, ok := library[name]
	if !ok {
		return nil, fmt.Errorf("patterns: unknown pattern %q", name)
	}
	grid := make([][]bool, side)
	for r := range grid {
		grid[r] = make([]bool, side)
	}
	for _, c := range cells {
		r, cc := row+c[0], col+c[1]
		if r < 0 || r >= side || cc < 0 || cc >= side {
			return nil, fmt.Errorf("patterns: %q at (%d,%d) does not fit a side of %d", name, row, col, side)
		}
		grid[r][cc] = true
	}
	return grid, nil
}
