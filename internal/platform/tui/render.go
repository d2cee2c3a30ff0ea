package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paddle-rush/internal/core"
)

// ansiCodes are the terminal colours behind each screen colour. Boss parts
// land on red/orange/yellow, the ship on cyan, the starfield on gray.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette maps screen colours to terminal styles. Colours missing from the
// palette are written as plain text.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the colour palette for r. A nil renderer writes to the
// local terminal.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := make(Palette, len(ansiCodes))
	for c, code := range ansiCodes {
		p[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// MonoPalette draws every cell without colour.
func MonoPalette() Palette { return Palette{} }

var defaultPalette = NewPalette(nil)

// Render converts a Screen buffer to a string, with one styled run per
// stretch of same-coloured cells.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if style, ok := p[color]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

// RenderScreen renders s with the local terminal palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}
