package node

import (
	"quadlife/internal/core"
)

// FromGrid lifts a square grid whose side is a power of two into a
// canonical node tree. The warp flag marks every interior node for
// hyper-step semantics.
func (c *Cache) FromGrid(rows [][]bool, warp bool) *Node {
	if !core.IsPow2(len(rows)) {
		panic("node: FromGrid side must be a power of two")
	}
	grid := core.NewBoolGridFromRows(rows)
	return c.fromRegion(grid, 0, 0, grid.Side, warp)
}

func (c *Cache) fromRegion(grid *core.BoolGrid, row, col, side int, warp bool) *Node {
	if side == 1 {
		return c.Cell(grid.At(row, col))
	}
	h := side / 2
	return c.Quad(
		c.fromRegion(grid, row, col, h, warp),
		c.fromRegion(grid, row, col+h, h, warp),
		c.fromRegion(grid, row+h, col, h, warp),
		c.fromRegion(grid, row+h, col+h, h, warp),
		warp,
	)
}

// Grid renders the node as a freshly allocated square grid.
func (n *Node) Grid() [][]bool {
	grid := core.NewBoolGrid(int(n.Size()))
	n.fillGrid(grid, 0, 0)
	return grid.Rows()
}

func (n *Node) fillGrid(grid *core.BoolGrid, row, col int64) {
	if n.empty {
		return
	}
	if n.level == 0 {
		grid.Cells()[grid.Index(int(row), int(col))] = true
		return
	}
	h := int64(1) << (n.level - 1)
	n.nw.fillGrid(grid, row, col)
	n.ne.fillGrid(grid, row, col+h)
	n.sw.fillGrid(grid, row+h, col)
	n.se.fillGrid(grid, row+h, col+h)
}

// AliveCoords lists the live cells in row, then column order. Empty
// subtrees are pruned, so large open universes traverse only their
// populated fringe.
func (n *Node) AliveCoords() []core.Coord {
	var out []core.Coord
	n.appendAlive(0, 0, &out)
	core.SortCoords(out)
	return out
}

func (n *Node) appendAlive(row, col int64, out *[]core.Coord) {
	if n.empty {
		return
	}
	if n.level == 0 {
		*out = append(*out, core.Coord{Row: row, Col: col})
		return
	}
	h := int64(1) << (n.level - 1)
	n.nw.appendAlive(row, col, out)
	n.ne.appendAlive(row, col+h, out)
	n.sw.appendAlive(row+h, col, out)
	n.se.appendAlive(row+h, col+h, out)
}

// AliveCount returns the number of live cells.
func (n *Node) AliveCount() int64 {
	if n.empty {
		return 0
	}
	if n.level == 0 {
		return 1
	}
	return n.nw.AliveCount() + n.ne.AliveCount() + n.sw.AliveCount() + n.se.AliveCount()
}
