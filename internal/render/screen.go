package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of terminal rows reserved below the map.
const hudRows = 5

// Screen is a Display backed by a tcell screen with a scrolling camera.
type Screen struct {
	grid
	screen tcell.Screen
	camera *Camera
}

// NewScreen creates a Screen for a map of the given size.
func NewScreen(screen tcell.Screen, mapW, mapH int) *Screen {
	s := &Screen{grid: newGrid(mapW, mapH), screen: screen}
	w, h := screen.Size()
	s.camera = NewCamera(0, 0, w, s.viewHeight(h))
	return s
}

func (s *Screen) viewHeight(screenH int) int {
	if s.fullscreen {
		return screenH
	}
	return max(screenH-hudRows, 1)
}

// CenterOn recenters the camera on map position (x, y).
func (s *Screen) CenterOn(x, y int) {
	w, h := s.screen.Size()
	s.camera.Resize(w, s.viewHeight(h))
	s.camera.Center(x, y)
	s.camera.Fit(s.width, s.height)
}

// Present draws the frame and status lines and shows the screen.
func (s *Screen) Present() {
	s.screen.Clear()
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.cells[y*s.width+x]
			if !c.drawn {
				continue
			}
			sx, sy, ok := s.camera.WorldToScreen(x, y)
			if !ok {
				continue
			}
			style := tcell.StyleDefault.Background(c.bg)
			ch := ' '
			if c.ch != 0 {
				ch = c.ch
				style = style.Foreground(c.fg)
			}
			s.putGlyph(sx, sy, ch, style)
		}
	}
	if !s.fullscreen {
		s.drawHUD()
	}
	s.screen.Show()
}

func (s *Screen) drawHUD() {
	screenW, screenH := s.screen.Size()
	hudY := screenH - hudRows
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < screenW; x++ {
		s.screen.SetContent(x, hudY, '─', nil, style)
	}
	for i, line := range s.status {
		if i >= hudRows-1 {
			break
		}
		s.drawText(0, hudY+1+i, runewidth.Truncate(line, screenW, "…"),
			tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// putGlyph draws ch at (x, y), padding the second column of wide runes.
func (s *Screen) putGlyph(x, y int, ch rune, style tcell.Style) {
	s.screen.SetContent(x, y, ch, nil, style)
	if runewidth.RuneWidth(ch) == 2 {
		s.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
