package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Text is a headless Display that writes each presented frame to an
// io.Writer. Walls print as '#' and floor as '.', with colors applied when
// the writer is a color terminal.
type Text struct {
	grid
	out      io.Writer
	renderer *lipgloss.Renderer
	palette  Palette
	style    lipgloss.Style
}

// NewText creates a Text display for a map of the given size.
func NewText(out io.Writer, mapW, mapH int, p Palette) *Text {
	r := lipgloss.NewRenderer(out)
	return &Text{
		grid:     newGrid(mapW, mapH),
		out:      out,
		renderer: r,
		palette:  p,
		style:    r.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// Present writes the frame, followed by the status lines unless fullscreen.
// Status lines are written whole, however narrow the map.
func (t *Text) Present() {
	fmt.Fprint(t.out, t.String())
}

// String renders the current frame.
func (t *Text) String() string {
	var b strings.Builder
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			b.WriteString(t.renderCell(t.cells[y*t.width+x]))
		}
		b.WriteByte('\n')
	}
	if !t.fullscreen {
		for _, line := range t.grid.status {
			b.WriteString(t.style.Render(line))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (t *Text) renderCell(c cell) string {
	if !c.drawn {
		return " "
	}
	ch := '.'
	if t.palette.IsWall(c.bg) {
		ch = '#'
	}
	style := t.renderer.NewStyle().Background(hexColor(c.bg))
	if c.ch != 0 {
		ch = c.ch
		style = style.Foreground(hexColor(c.fg))
	}
	return style.Render(string(ch))
}

// Row returns the characters of map row y without styling.
func (t *Text) Row(y int) string {
	var b strings.Builder
	for x := 0; x < t.width; x++ {
		c := t.cells[y*t.width+x]
		switch {
		case !c.drawn:
			b.WriteByte(' ')
		case c.ch != 0:
			b.WriteRune(c.ch)
		case t.palette.IsWall(c.bg):
			b.WriteByte('#')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Status returns the current status lines.
func (t *Text) Status() []string {
	return t.grid.status
}

func hexColor(c tcell.Color) lipgloss.TerminalColor {
	if !c.Valid() {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(fmt.Sprintf("#%06x", c.Hex()))
}
