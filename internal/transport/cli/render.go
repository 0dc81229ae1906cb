package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kailas-cloud/improvdex/internal/domain/game"
)

// Renderer writes game views to a terminal.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// NewRenderer creates a renderer writing to w with the given styles.
func NewRenderer(w io.Writer, styles Styles) *Renderer {
	return &Renderer{w: w, styles: styles}
}

// Cards writes one summary card per game, followed by a result count.
func (r *Renderer) Cards(games []*game.Game) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(r.w, r.styles.Muted.Render("No games match."))
		return err
	}
	for _, g := range games {
		if _, err := fmt.Fprintln(r.w, r.Card(g)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w, r.styles.Muted.Render(plural(len(games), "game")))
	return err
}

// Card renders the summary of one game.
func (r *Renderer) Card(g *game.Game) string {
	s := r.styles

	header := s.Title.Render(g.Name())
	if d := s.Difficulty(g.Difficulty()); d != "" {
		header += "  " + d
	}

	lines := []string{header, s.Category.Render(g.Category())}
	if meta := r.meta(g); meta != "" {
		lines = append(lines, meta)
	}
	if len(g.Tags()) > 0 {
		lines = append(lines, s.Tag.Render("#"+strings.Join(g.Tags(), " #")))
	}
	lines = append(lines, s.Muted.Render("id: "+g.ID()))

	return s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Details writes the full view of one game.
func (r *Renderer) Details(g *game.Game) error {
	s := r.styles
	var b strings.Builder

	b.WriteString(r.Card(g))
	b.WriteString("\n")

	if setup := g.Setup(); setup != nil {
		b.WriteString(s.Heading.Render("Setup") + "\n")
		if setup.Description != "" {
			b.WriteString(s.Body.Render(setup.Description) + "\n")
		}
		if len(setup.Props) > 0 {
			b.WriteString(s.Label.Render("Props: ") + s.Body.Render(strings.Join(setup.Props, ", ")) + "\n")
		}
	}

	r.list(&b, "Rules", g.Rules(), true)

	if len(g.Tips()) > 0 {
		b.WriteString(s.Heading.Render("Tips") + "\n")
		for _, t := range g.Tips() {
			if t.Kind() == game.TipRole {
				b.WriteString(s.Role.Render(capitalize(t.Role())+":") + "\n")
				for _, line := range t.Lines() {
					b.WriteString("  " + s.Bullet.Render("•") + " " + s.Body.Render(line) + "\n")
				}
				continue
			}
			b.WriteString(s.Bullet.Render("•") + " " + s.Body.Render(t.Text()) + "\n")
		}
	}

	r.list(&b, "Examples", g.Examples(), false)

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Categories writes one category per line.
func (r *Renderer) Categories(cats []string) error {
	for _, c := range cats {
		if _, err := fmt.Fprintln(r.w, r.styles.Category.Render(c)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) meta(g *game.Game) string {
	s := r.styles
	var parts []string
	if pc := g.PlayerCount(); pc != nil {
		parts = append(parts, s.Label.Render("Players ")+s.Body.Render(pc.String()))
	}
	if a := g.AudienceParticipation(); a != nil {
		v := "no"
		if *a {
			v = "yes"
		}
		parts = append(parts, s.Label.Render("Audience ")+s.Body.Render(v))
	}
	if g.Duration() != "" {
		parts = append(parts, s.Label.Render("Time ")+s.Body.Render(g.Duration()))
	}
	return strings.Join(parts, s.Muted.Render("  ·  "))
}

func (r *Renderer) list(b *strings.Builder, title string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	s := r.styles
	b.WriteString(s.Heading.Render(title) + "\n")
	for i, item := range items {
		marker := s.Bullet.Render("•")
		if numbered {
			marker = s.Bullet.Render(fmt.Sprintf("%d.", i+1))
		}
		b.WriteString(marker + " " + s.Body.Render(item) + "\n")
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
