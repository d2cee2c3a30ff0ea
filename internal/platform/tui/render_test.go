package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paddle-rush/internal/core"
)

func TestNewPaletteCoversScreenColors(t *testing.T) {
	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		if _, ok := p[c]; !ok {
			t.Errorf("palette has no style for color %d", c)
		}
	}
	if _, ok := p[core.ColorDefault]; ok {
		t.Error("the default color should be written plain")
	}
}

func TestPaletteRender(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawTextColored(0, 1, "paddle", core.ColorOrange)

	tests := []struct {
		name    string
		palette Palette
	}{
		{"mono", MonoPalette()},
		// A renderer without a terminal has no colour profile.
		{"plain terminal", NewPalette(lipgloss.NewRenderer(io.Discard))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.palette.Render(s), s.String(); got != want {
				t.Errorf("Render() = %q, expected %q", got, want)
			}
		})
	}
}

func TestModelUsesPalette(t *testing.T) {
	opts := quietOptions()
	opts.Palette = MonoPalette()
	m := NewModel(&fakeGame{}, testRuntime(), opts)

	view := m.View()
	if !strings.HasPrefix(view, "fake") {
		t.Errorf("View() = %q, expected the game's frame", view)
	}
	if strings.Contains(view, "\x1b[") {
		t.Error("a mono palette must not emit escape codes")
	}
}
