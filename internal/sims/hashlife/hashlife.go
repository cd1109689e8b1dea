// Package hashlife binds the interned quadtree evaluator to a boundary
// mode and exposes it through the Life contract.
package hashlife

import (
	"fmt"

	"quadlife/internal/core"
	"quadlife/internal/node"
)

// Mode selects the boundary policy applied on every step.
type Mode int

const (
	// ModeTorus wraps at the original boundary on every step.
	ModeTorus Mode = iota
	// ModeCropped pads with one dead frame per step; growth beyond the
	// original box is silently truncated.
	ModeCropped
	// ModeOpen double-pads before stepping and prunes after, yielding an
	// unbounded universe with minimal representation.
	ModeOpen
	// ModeWarp pads once and hyper-steps, advancing size/2 generations
	// per step. Growth reaching the warp box is cropped, so the mode is
	// unsuitable for unbounded patterns.
	ModeWarp
)

// String returns the mode's short name.
func (m Mode) String() string {
	switch m {
	case ModeTorus:
		return "torus"
	case ModeCropped:
		return "cropped"
	case ModeOpen:
		return "open"
	case ModeWarp:
		return "warp"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "torus":
		return ModeTorus, nil
	case "cropped":
		return ModeCropped, nil
	case "open":
		return ModeOpen, nil
	case "warp":
		return ModeWarp, nil
	}
	return 0, fmt.Errorf("hashlife: unknown mode %q", s)
}

// Life is a Node bound to a boundary mode. Instances are immutable; Next
// returns a sibling sharing the same cache.
type Life struct {
	cache *node.Cache
	root  *node.Node
	mode  Mode
}

// Create lifts a square grid into an interned node tree bound to the
// given mode. Sides that are not powers of two are padded up with dead
// cells; in warp mode the tree is additionally zero-padded until its
// level reaches warpLevel. Each Create starts a fresh cache; see
// CreateWithCache to share one.
func Create(grid [][]bool, mode Mode, warpLevel int) (*Life, error) {
	return CreateWithCache(node.NewCache(), grid, mode, warpLevel)
}

// CreateWithCache is Create with an explicit interning context, for
// callers that want shared memoization or test-isolated caches.
func CreateWithCache(cache *node.Cache, grid [][]bool, mode Mode, warpLevel int) (*Life, error) {
	if err := core.CheckSquare(grid); err != nil {
		return nil, err
	}
	padded := core.PadToPow2(grid, 4)
	root := cache.FromGrid(padded, mode == ModeWarp)
	if mode == ModeWarp {
		for root.Level() < warpLevel {
			root = cache.ZeroPad(root)
		}
	}
	return &Life{cache: cache, root: root, mode: mode}, nil
}

// Name returns the evaluator identifier, qualified by mode.
func (l *Life) Name() string { return "hashlife-" + l.mode.String() }

// Mode returns the boundary policy.
func (l *Life) Mode() Mode { return l.mode }

// Root exposes the current canonical node.
func (l *Life) Root() *node.Node { return l.root }

// Cache exposes the interning context shared along the Next chain.
func (l *Life) Cache() *node.Cache { return l.cache }

// Size returns the side length of the current universe box.
func (l *Life) Size() int64 { return l.root.Size() }

// GenerationStep reports how many generations one Next covers: 1, or
// size/2 for warp mode.
func (l *Life) GenerationStep() int64 {
	if l.mode == ModeWarp {
		return l.root.Size() / 2
	}
	return 1
}

// Next produces the next Life in the same mode by composing the boundary
// transform with the step core.
func (l *Life) Next() core.Life {
	c := l.cache
	var root *node.Node
	switch l.mode {
	case ModeTorus:
		root = c.Step(c.TorusPad(l.root))
	case ModeCropped:
		root = c.Step(c.ZeroPad(l.root))
	case ModeOpen:
		root = c.ZeroPrune(c.Step(c.ZeroPad(c.ZeroPad(l.root))))
	case ModeWarp:
		root = c.WarpStep(c.ZeroPad(l.root))
	default:
		panic("hashlife: invalid mode")
	}
	return &Life{cache: c, root: root, mode: l.mode}
}

// ExtractGrid renders the current universe box.
func (l *Life) ExtractGrid() [][]bool { return l.root.Grid() }

// AliveCoords lists live cells in row, then column order.
func (l *Life) AliveCoords() []core.Coord { return l.root.AliveCoords() }

// Signature returns the translation-normalized canonical string.
func (l *Life) Signature() string { return core.Signature(l.root.AliveCoords()) }

// AliveCount returns the population.
func (l *Life) AliveCount() int64 { return l.root.AliveCount() }

// ExtraInfo reports the tree level and the interned-node count.
func (l *Life) ExtraInfo() string {
	return fmt.Sprintf("level=%d cache=%d", l.root.Level(), l.cache.Len())
}
