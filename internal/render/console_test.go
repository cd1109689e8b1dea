package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"quadlife/internal/patterns"
	"quadlife/internal/sims/gridlife"
)

func TestPlainFrame(t *testing.T) {
	grid, err := patterns.At("blinker", 4, 1, 0)
	require.NoError(t, err)
	life, err := gridlife.Create(grid)
	require.NoError(t, err)

	frame := NewConsole(false).Frame(life, 7)
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "gridlife")
	require.Contains(t, lines[0], "gen=7")
	require.Contains(t, lines[0], "pop=3")
	require.Equal(t, "........", lines[1])
	require.Equal(t, "######..", lines[2])
	require.Equal(t, "........", lines[3])
}
