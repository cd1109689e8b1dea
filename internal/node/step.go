package node

// Step advances the centered 2^(L-1) square of a level-L node by one
// generation, returning the level-(L-1) result. Results are memoized on
// the node, so identical subregions across space and time reuse work.
func (c *Cache) Step(n *Node) *Node {
	if n.level < 2 {
		panic("node: Step requires level >= 2")
	}
	if n.warp {
		panic("node: Step on a warp-mode node")
	}
	if n.result != nil {
		return n.result
	}
	var r *Node
	switch {
	case n.empty:
		r = c.Zero(n.level-1, false)
	case n.level == 2:
		r = c.stepBase(n)
	default:
		n00 := c.centeredSub(n.nw)
		n01 := c.centeredHorizontal(n.nw, n.ne)
		n02 := c.centeredSub(n.ne)
		n10 := c.centeredVertical(n.nw, n.sw)
		n11 := c.centeredCenter(n)
		n12 := c.centeredVertical(n.ne, n.se)
		n20 := c.centeredSub(n.sw)
		n21 := c.centeredHorizontal(n.sw, n.se)
		n22 := c.centeredSub(n.se)
		r = c.Quad(
			c.Step(c.Quad(n00, n01, n10, n11, false)),
			c.Step(c.Quad(n01, n02, n11, n12, false)),
			c.Step(c.Quad(n10, n11, n20, n21, false)),
			c.Step(c.Quad(n11, n12, n21, n22, false)),
			false,
		)
	}
	n.result = r
	return r
}

// WarpStep advances the centered 2^(L-1) square of a level-L node by
// 2^(L-2) generations via recursive doubling: the nine intermediate
// combinations are each warp-stepped before being combined, and the four
// recombined quarters are warp-stepped again. The node must carry warp
// identity so the memoized result cannot collide with a simple-step
// result over the same children.
func (c *Cache) WarpStep(n *Node) *Node {
	if n.level < 2 {
		panic("node: WarpStep requires level >= 2")
	}
	if !n.warp {
		panic("node: WarpStep on a node without warp identity")
	}
	if n.result != nil {
		return n.result
	}
	var r *Node
	switch {
	case n.empty:
		r = c.Zero(n.level-1, true)
	case n.level == 2:
		r = c.stepBase(n)
	default:
		n00 := c.WarpStep(n.nw)
		n01 := c.WarpStep(c.Quad(n.nw.ne, n.ne.nw, n.nw.se, n.ne.sw, true))
		n02 := c.WarpStep(n.ne)
		n10 := c.WarpStep(c.Quad(n.nw.sw, n.nw.se, n.sw.nw, n.sw.ne, true))
		n11 := c.WarpStep(c.Quad(n.nw.se, n.ne.sw, n.sw.ne, n.se.nw, true))
		n12 := c.WarpStep(c.Quad(n.ne.sw, n.ne.se, n.se.nw, n.se.ne, true))
		n20 := c.WarpStep(n.sw)
		n21 := c.WarpStep(c.Quad(n.sw.ne, n.se.nw, n.sw.se, n.se.sw, true))
		n22 := c.WarpStep(n.se)
		r = c.Quad(
			c.WarpStep(c.Quad(n00, n01, n10, n11, true)),
			c.WarpStep(c.Quad(n01, n02, n11, n12, true)),
			c.WarpStep(c.Quad(n10, n11, n20, n21, true)),
			c.WarpStep(c.Quad(n11, n12, n21, n22, true)),
			true,
		)
	}
	n.result = r
	return r
}

// stepBase is the shared recursion terminator: the 16 cells of a level-2
// node advance their 2x2 center by one generation.
func (c *Cache) stepBase(n *Node) *Node {
	b := [4][4]*Node{
		{n.nw.nw, n.nw.ne, n.ne.nw, n.ne.ne},
		{n.nw.sw, n.nw.se, n.ne.sw, n.ne.se},
		{n.sw.nw, n.sw.ne, n.se.nw, n.se.ne},
		{n.sw.sw, n.sw.se, n.se.sw, n.se.se},
	}
	next := func(row, col int) *Node {
		sum := 0
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				if b[row+dr][col+dc].alive {
					sum++
				}
			}
		}
		return c.Cell(b[row][col].nextAlive(sum))
	}
	return c.Quad(next(1, 1), next(1, 2), next(2, 1), next(2, 2), n.warp)
}

// The four helpers below build the nine overlapping level-(L-2) subnodes
// that tile the center of a level-L node at stride 2^(L-2).

func (c *Cache) centeredSub(n *Node) *Node {
	return c.Quad(n.nw.se, n.ne.sw, n.sw.ne, n.se.nw, n.warp)
}

func (c *Cache) centeredHorizontal(w, e *Node) *Node {
	return c.Quad(w.ne.se, e.nw.sw, w.se.ne, e.sw.nw, w.warp)
}

func (c *Cache) centeredVertical(n, s *Node) *Node {
	return c.Quad(n.sw.se, n.se.sw, s.nw.ne, s.ne.nw, n.warp)
}

func (c *Cache) centeredCenter(n *Node) *Node {
	return c.Quad(n.nw.se.se, n.ne.sw.sw, n.sw.ne.ne, n.se.nw.nw, n.warp)
}
