package hashlife

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadlife/internal/core"
	"quadlife/internal/node"
	"quadlife/internal/patterns"
	"quadlife/internal/sims/gridlife"
)

func advance(l core.Life, steps int) core.Life {
	for i := 0; i < steps; i++ {
		l = l.Next()
	}
	return l
}

func TestBlinkerOnTorus(t *testing.T) {
	grid, err := patterns.At("blinker", 16, 7, 6)
	require.NoError(t, err)

	life, err := Create(grid, ModeTorus, 0)
	require.NoError(t, err)
	require.Equal(t, "0:0,0:1,0:2", life.Signature())

	next := life.Next()
	require.Equal(t, "0:0,1:0,2:0", next.Signature())
	require.Equal(t, []core.Coord{
		{Row: 6, Col: 7}, {Row: 7, Col: 7}, {Row: 8, Col: 7},
	}, next.AliveCoords())

	again := next.Next()
	require.Equal(t, life.Signature(), again.Signature())
	require.Equal(t, life.AliveCoords(), again.AliveCoords())
}

func TestGliderCircumnavigatesTorus(t *testing.T) {
	grid, err := patterns.At("glider", 32, 0, 0)
	require.NoError(t, err)

	cache := node.NewCache()
	life, err := CreateWithCache(cache, grid, ModeTorus, 0)
	require.NoError(t, err)

	start := life.Root()
	current := core.Life(life)
	for gen := 1; gen <= 128; gen++ {
		current = current.Next()
		root := current.(*Life).Root()
		if gen < 128 {
			require.False(t, root == start, "glider must not return before generation 128, returned at %d", gen)
		} else {
			require.True(t, root == start, "glider must return to its start after 128 generations")
		}
	}
	// The phase-aligned signature recurs every 4 generations regardless of
	// position; the identity check above is the positional one.
	require.Equal(t, life.Signature(), current.Signature())
}

func TestTorusMatchesOracle(t *testing.T) {
	grid, err := patterns.Grid("random", 16, 42)
	require.NoError(t, err)

	fast, err := Create(grid, ModeTorus, 0)
	require.NoError(t, err)
	slow, err := gridlife.Create(grid)
	require.NoError(t, err)

	a, b := core.Life(fast), core.Life(slow)
	for gen := 0; gen <= 40; gen++ {
		require.Equal(t, b.Signature(), a.Signature(), "torus diverged from oracle at generation %d", gen)
		require.Equal(t, b.AliveCount(), a.AliveCount())
		a, b = a.Next(), b.Next()
	}
}

func TestOpenMatchesTorusInsideLightCone(t *testing.T) {
	// Until the pattern's light cone reaches the box boundary the torus
	// and the unbounded universe agree.
	grid, err := patterns.Grid("r-pentomino", 128, 0)
	require.NoError(t, err)

	open, err := Create(grid, ModeOpen, 0)
	require.NoError(t, err)
	torus, err := Create(grid, ModeTorus, 0)
	require.NoError(t, err)

	a, b := core.Life(open), core.Life(torus)
	for gen := 0; gen <= 40; gen++ {
		require.Equal(t, b.Signature(), a.Signature(), "open diverged from torus at generation %d", gen)
		a, b = a.Next(), b.Next()
	}
}

func TestCroppedDivergesFromOpenOnOverflow(t *testing.T) {
	grid, err := patterns.At("blinker", 8, 0, 3)
	require.NoError(t, err)

	open, err := Create(grid, ModeOpen, 0)
	require.NoError(t, err)
	cropped, err := Create(grid, ModeCropped, 0)
	require.NoError(t, err)

	require.Equal(t, open.Signature(), cropped.Signature())

	openNext := open.Next()
	croppedNext := cropped.Next()
	require.Equal(t, "0:0,1:0,2:0", openNext.Signature())
	require.Equal(t, "0:0,1:0", croppedNext.Signature())
	require.NotEqual(t, openNext.Signature(), croppedNext.Signature())
}

func TestTorusDivergesFromOpenOnWrap(t *testing.T) {
	grid, err := patterns.At("blinker", 8, 0, 3)
	require.NoError(t, err)

	open, err := Create(grid, ModeOpen, 0)
	require.NoError(t, err)
	torus, err := Create(grid, ModeTorus, 0)
	require.NoError(t, err)

	openNext := open.Next()
	torusNext := torus.Next()
	require.NotEqual(t, openNext.Signature(), torusNext.Signature())
	require.Equal(t, "0:0,1:0,7:0", torusNext.Signature())
}

func TestWarpMatchesOpen(t *testing.T) {
	grid, err := patterns.Grid("r-pentomino", 32, 0)
	require.NoError(t, err)

	warp, err := Create(grid, ModeWarp, 5)
	require.NoError(t, err)
	require.Equal(t, int64(16), warp.GenerationStep())

	open, err := Create(grid, ModeOpen, 0)
	require.NoError(t, err)

	warpNext := warp.Next()
	openAt16 := advance(open, 16)
	require.Equal(t, openAt16.Signature(), warpNext.Signature())
	require.Equal(t, openAt16.AliveCount(), warpNext.AliveCount())
}

func TestWarpHyperStepDepth(t *testing.T) {
	grid, err := patterns.Grid("r-pentomino", 32, 0)
	require.NoError(t, err)

	warp, err := Create(grid, ModeWarp, 7)
	require.NoError(t, err)
	require.Equal(t, int64(128), warp.Size())
	require.Equal(t, int64(64), warp.GenerationStep())

	open, err := Create(grid, ModeOpen, 0)
	require.NoError(t, err)

	require.Equal(t, advance(open, 64).Signature(), warp.Next().Signature())
}

func TestEmptyUniverseFixedPoints(t *testing.T) {
	empty := make([][]bool, 16)
	for r := range empty {
		empty[r] = make([]bool, 16)
	}

	for _, mode := range [...]Mode{ModeTorus, ModeCropped} {
		cache := node.NewCache()
		life, err := CreateWithCache(cache, empty, mode, 0)
		require.NoError(t, err)
		require.Equal(t, "", life.Signature())
		next := life.Next().(*Life)
		require.Equal(t, "", next.Signature())
		require.True(t, next.Root() == cache.Zero(4, false), "mode %s must yield the zero node", mode)
	}

	cache := node.NewCache()
	open, err := CreateWithCache(cache, empty, ModeOpen, 0)
	require.NoError(t, err)
	next := open.Next().(*Life)
	require.True(t, next.Root() == cache.Zero(2, false), "open mode must prune to the minimal zero node")
	require.True(t, next.Next().(*Life).Root() == cache.Zero(2, false))

	cache = node.NewCache()
	warp, err := CreateWithCache(cache, empty, ModeWarp, 5)
	require.NoError(t, err)
	require.True(t, warp.Root() == cache.Zero(5, true))
	require.True(t, warp.Next().(*Life).Root() == cache.Zero(5, true))
}

func TestRPentominoStabilizes(t *testing.T) {
	if testing.Short() {
		t.Skip("long stabilization run")
	}
	grid, err := patterns.Grid("r-pentomino", 32, 0)
	require.NoError(t, err)

	life, err := Create(grid, ModeOpen, 0)
	require.NoError(t, err)
	require.Equal(t, int64(5), life.AliveCount())

	current := advance(core.Life(life), 1103)
	require.Equal(t, int64(116), current.AliveCount(), "classic census after 1103 generations")

	// Stabilized: still lifes, period-2 oscillators and escaped gliders
	// keep the population constant from here on.
	for i := 0; i < 4; i++ {
		current = current.Next()
		require.Equal(t, int64(116), current.AliveCount())
	}
}

func TestModeParsingAndNames(t *testing.T) {
	for _, mode := range [...]Mode{ModeTorus, ModeCropped, ModeOpen, ModeWarp} {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		require.Equal(t, mode, parsed)
	}
	_, err := ParseMode("bogus")
	require.Error(t, err)
}

func TestCreateRejectsNonSquare(t *testing.T) {
	_, err := Create([][]bool{{true}, {true}}, ModeOpen, 0)
	require.Error(t, err)
}

func TestNonPowerOfTwoSidePadsUp(t *testing.T) {
	grid := make([][]bool, 5)
	for r := range grid {
		grid[r] = make([]bool, 5)
	}
	grid[2][1], grid[2][2], grid[2][3] = true, true, true
	life, err := Create(grid, ModeCropped, 0)
	require.NoError(t, err)
	require.Equal(t, int64(8), life.Size())
	require.Equal(t, "0:0,0:1,0:2", life.Signature())
}

func TestRegistryExposesModes(t *testing.T) {
	for _, name := range []string{"torus", "cropped", "open", "warp"} {
		factory, ok := core.Lifes()[name]
		require.True(t, ok, "registry must expose %q", name)
		life, err := factory(map[string]string{"size": "16", "pattern": "blinker"})
		require.NoError(t, err)
		require.Equal(t, "hashlife-"+name, life.Name())
	}
}
