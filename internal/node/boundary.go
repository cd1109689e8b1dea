package node

// ZeroPad returns a node one level up whose center holds n and whose frame
// is dead. Preserves warp identity.
func (c *Cache) ZeroPad(n *Node) *Node {
	if n.level < 1 {
		panic("node: ZeroPad requires level >= 1")
	}
	z := c.Zero(n.level-1, n.warp)
	return c.Quad(
		c.Quad(z, z, z, n.nw, n.warp),
		c.Quad(z, z, n.ne, z, n.warp),
		c.Quad(z, n.sw, z, z, n.warp),
		c.Quad(n.se, z, z, z, n.warp),
		n.warp,
	)
}

// TorusPad returns a node one level up whose four quadrants each hold the
// 2x2 tiling quad(se, sw, ne, nw) of n, so that stepping the center yields
// one generation on the wrapped topology. Preserves warp identity.
func (c *Cache) TorusPad(n *Node) *Node {
	if n.level < 1 {
		panic("node: TorusPad requires level >= 1")
	}
	tile := c.Quad(n.se, n.sw, n.ne, n.nw, n.warp)
	return c.Quad(tile, tile, tile, tile, n.warp)
}

// ZeroPrune shrinks n to the smallest node (level >= 2) whose border still
// holds every live cell: a lone live quadrant replaces the whole node, and
// an empty outer rim collapses to the centered subnode. Preserves warp
// identity; idempotent.
func (c *Cache) ZeroPrune(n *Node) *Node {
	for n.level > 2 {
		if q := c.loneQuadrant(n); q != nil {
			n = q
			continue
		}
		if !c.rimEmpty(n) {
			return n
		}
		n = c.Quad(n.nw.se, n.ne.sw, n.sw.ne, n.se.nw, n.warp)
	}
	return n
}

// loneQuadrant returns the single non-empty quadrant when the other three
// are dead, or nil.
func (c *Cache) loneQuadrant(n *Node) *Node {
	var q *Node
	for _, child := range [...]*Node{n.nw, n.ne, n.sw, n.se} {
		if child.empty {
			continue
		}
		if q != nil {
			return nil
		}
		q = child
	}
	return q
}

// rimEmpty reports whether the 12 outer grandchildren (all but the four
// inner-facing ones) are dead.
func (c *Cache) rimEmpty(n *Node) bool {
	return n.nw.nw.empty && n.nw.ne.empty && n.nw.sw.empty &&
		n.ne.nw.empty && n.ne.ne.empty && n.ne.se.empty &&
		n.sw.nw.empty && n.sw.sw.empty && n.sw.se.empty &&
		n.se.ne.empty && n.se.sw.empty && n.se.se.empty
}
