package node

import "quadlife/internal/metrics"

// key is the structural identity of a node. Interior nodes compare by
// child identity, not recursive structure: children are already canonical,
// so one pointer comparison per child suffices.
type key struct {
	level int
	warp  bool
	alive bool
	nw    *Node
	ne    *Node
	sw    *Node
	se    *Node
}

type zeroKey struct {
	level int
	warp  bool
}

// Cache is the interning context every node factory routes through. It is
// not safe for concurrent use; evaluation is single-threaded and callers
// that need isolation create one Cache per Life family.
type Cache struct {
	table map[key]*Node
	zeros map[zeroKey]*Node
	m     *metrics.Metrics
}

// NewCache returns an empty interning context.
func NewCache() *Cache {
	return &Cache{
		table: make(map[key]*Node),
		zeros: make(map[zeroKey]*Node),
	}
}

// SetMetrics attaches a metrics sink; nil detaches it.
func (c *Cache) SetMetrics(m *metrics.Metrics) { c.m = m }

// Cell returns the canonical base node for the given state.
func (c *Cache) Cell(alive bool) *Node {
	k := key{level: 0, alive: alive}
	if n, ok := c.table[k]; ok {
		c.m.Hit()
		return n
	}
	n := &Node{level: 0, alive: alive, empty: !alive}
	c.table[k] = n
	c.m.Miss(len(c.table))
	return n
}

// Quad returns the canonical interior node over four canonical children of
// equal level. The warp flag is part of the identity, keeping simple-step
// and hyper-step results apart in the memo.
func (c *Cache) Quad(nw, ne, sw, se *Node, warp bool) *Node {
	if nw.level != ne.level || nw.level != sw.level || nw.level != se.level {
		panic("node: Quad children must share a level")
	}
	k := key{level: nw.level + 1, warp: warp, nw: nw, ne: ne, sw: sw, se: se}
	if n, ok := c.table[k]; ok {
		c.m.Hit()
		return n
	}
	n := &Node{
		level: nw.level + 1,
		warp:  warp,
		nw:    nw, ne: ne, sw: sw, se: se,
		empty: nw.empty && ne.empty && sw.empty && se.empty,
	}
	c.table[k] = n
	c.m.Miss(len(c.table))
	return n
}

// Zero returns the canonical all-dead node at the given level. Zero nodes
// are interned per (level, warp) pair so padding a warp tree never mixes
// memo key spaces.
func (c *Cache) Zero(level int, warp bool) *Node {
	if level < 0 {
		panic("node: Zero level must be non-negative")
	}
	if level == 0 {
		return c.Cell(false)
	}
	zk := zeroKey{level: level, warp: warp}
	if n, ok := c.zeros[zk]; ok {
		return n
	}
	child := c.Zero(level-1, warp)
	n := c.Quad(child, child, child, child, warp)
	c.zeros[zk] = n
	return n
}

// Clear empties both tables. Every outstanding Node handle is invalidated;
// callers must rebuild their Life instances.
func (c *Cache) Clear() {
	c.table = make(map[key]*Node)
	c.zeros = make(map[zeroKey]*Node)
	c.m.Reset()
}

// Len reports the number of interned nodes.
func (c *Cache) Len() int { return len(c.table) }
