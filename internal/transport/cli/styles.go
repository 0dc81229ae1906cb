// Package cli renders catalog games as terminal cards with light and dark palettes.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kailas-cloud/improvdex/internal/domain/game"
	"github.com/kailas-cloud/improvdex/internal/domain/theme"
)

// Palette holds the colors of one theme.
type Palette struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Beginner   lipgloss.Color
	Middle     lipgloss.Color
	Advanced   lipgloss.Color
}

// LightPalette is used for theme.Light.
func LightPalette() Palette {
	return Palette{
		Foreground: lipgloss.Color("#1f2933"),
		Primary:    lipgloss.Color("#3b2a7a"),
		Accent:     lipgloss.Color("#d9480f"),
		Muted:      lipgloss.Color("#7b8794"),
		Border:     lipgloss.Color("#cbd2d9"),
		Beginner:   lipgloss.Color("#2f9e44"),
		Middle:     lipgloss.Color("#e67700"),
		Advanced:   lipgloss.Color("#c92a2a"),
	}
}

// DarkPalette is used for theme.Dark.
func DarkPalette() Palette {
	return Palette{
		Foreground: lipgloss.Color("#e4e7eb"),
		Primary:    lipgloss.Color("#b197fc"),
		Accent:     lipgloss.Color("#ffa94d"),
		Muted:      lipgloss.Color("#9aa5b1"),
		Border:     lipgloss.Color("#3e4c59"),
		Beginner:   lipgloss.Color("#8ce99a"),
		Middle:     lipgloss.Color("#ffd43b"),
		Advanced:   lipgloss.Color("#ff8787"),
	}
}

// PaletteFor maps a theme to its palette.
func PaletteFor(t theme.Theme) Palette {
	if t == theme.Dark {
		return DarkPalette()
	}
	return LightPalette()
}

// Styles holds the styled components of the game views.
type Styles struct {
	Theme   theme.Theme
	palette Palette

	Card     lipgloss.Style
	Title    lipgloss.Style
	Category lipgloss.Style
	Tag      lipgloss.Style
	Label    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Heading  lipgloss.Style
	Role     lipgloss.Style
	Bullet   lipgloss.Style
}

// NewStyles builds styles for t, bound to the color profile of w.
func NewStyles(w io.Writer, t theme.Theme) Styles {
	r := lipgloss.NewRenderer(w)
	p := PaletteFor(t)

	return Styles{
		Theme:   t,
		palette: p,

		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			Width(64),

		Title: r.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Category: r.NewStyle().
			Foreground(p.Accent).
			Italic(true),

		Tag: r.NewStyle().
			Foreground(p.Muted),

		Label: r.NewStyle().
			Foreground(p.Muted).
			Bold(true),

		Body: r.NewStyle().
			Foreground(p.Foreground),

		Muted: r.NewStyle().
			Foreground(p.Muted),

		Heading: r.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			MarginTop(1),

		Role: r.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Bullet: r.NewStyle().
			Foreground(p.Accent),
	}
}

// Difficulty renders a difficulty badge in its level color.
func (s Styles) Difficulty(d game.Difficulty) string {
	if d == "" {
		return ""
	}
	c := s.palette.Muted
	switch d {
	case game.Beginner:
		c = s.palette.Beginner
	case game.Intermediate:
		c = s.palette.Middle
	case game.Advanced:
		c = s.palette.Advanced
	}
	return s.Body.Foreground(c).Bold(true).Render(string(d))
}
