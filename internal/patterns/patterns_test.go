package patterns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridPlacesPatternNearCenter(t *testing.T) {
	grid, err := Grid("blinker", 16, 0)
	require.NoError(t, err)
	require.True(t, grid[7][7], "blinker anchor must sit near the center")
	count := 0
	for _, row := range grid {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	require.Equal(t, 3, count)
}

func TestRandomIsDeterministic(t *testing.T) {
	a, err := Grid("random", 16, 99)
	require.NoError(t, err)
	b, err := Grid("random", 16, 99)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := Grid("random", 16, 100)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestUnknownPattern(t *testing.T) {
	_, err := Grid("acorn", 16, 0)
	require.Error(t, err)
	_, err = At("acorn", 16, 0, 0)
	require.Error(t, err)
}

func TestAtRejectsOutOfBounds(t *testing.T) {
	_, err := At("glider", 4, 3, 3)
	require.Error(t, err)
}
