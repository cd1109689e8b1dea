// Package render draws Life frames as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"quadlife/internal/core"
)

// Console renders binary cell grids as styled terminal rows.
type Console struct {
	alive  string
	dead   string
	header lipgloss.Style
}

// NewConsole builds a renderer. With styled false the output is plain
// runes, safe for pipes and logs.
func NewConsole(styled bool) *Console {
	c := &Console{alive: "##", dead: "..", header: lipgloss.NewStyle()}
	if styled {
		c.alive = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("██")
		c.dead = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("··")
		c.header = lipgloss.NewStyle().Bold(true)
	}
	return c
}

// Frame renders the Life's current box with a one-line header.
func (c *Console) Frame(life core.Life, generation int64) string {
	var b strings.Builder
	b.WriteString(c.header.Render(fmt.Sprintf("%s gen=%s pop=%s box=%d",
		life.Name(),
		humanize.Comma(generation),
		humanize.Comma(life.AliveCount()),
		life.Size(),
	)))
	b.WriteByte('\n')
	for _, row := range life.ExtractGrid() {
		for _, alive := range row {
			if alive {
				b.WriteString(c.alive)
			} else {
				b.WriteString(c.dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
