package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kailas-cloud/improvdex/internal/domain/game"
	"github.com/kailas-cloud/improvdex/internal/domain/theme"
)

func boolPtr(b bool) *bool { return &b }

func sampleGame() *game.Game {
	g := game.Reconstruct(game.Params{
		ID:                    "freeze-tag",
		Name:                  "Freeze Tag",
		Category:              "Scene Games",
		Difficulty:            game.Beginner,
		Tags:                  []string{"physical", "classic"},
		PlayerCount:           &game.PlayerCount{Min: 4, Max: 10, Optimal: 6},
		Setup:                 &game.Setup{Description: "Two players start a scene", Props: []string{"chair"}},
		Rules:                 []string{"Shout freeze", "Take the pose"},
		Tips:                  []game.Tip{game.NewPlainTip("Freeze on big shapes"), game.NewRoleTip("host", []string{"Get a location"})},
		Examples:              []string{"Fencers become shoppers"},
		AudienceParticipation: boolPtr(true),
		Duration:              "5 min",
	})
	return &g
}

func TestCards(t *testing.T) {
	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		t.Run(string(th), func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRenderer(&buf, NewStyles(&buf, th))
			if err := r.Cards([]*game.Game{sampleGame()}); err != nil {
				t.Fatalf("Cards: %v", err)
			}
			out := buf.String()
			for _, want := range []string{"Freeze Tag", "Scene Games", "beginner", "4-10 (best 6)", "#physical #classic", "id: freeze-tag", "1 game"} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCards_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, NewStyles(&buf, theme.Light))
	if err := r.Cards(nil); err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if !strings.Contains(buf.String(), "No games match.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDetails(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, NewStyles(&buf, theme.Dark))
	if err := r.Details(sampleGame()); err != nil {
		t.Fatalf("Details: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Setup", "Two players start a scene", "Props: chair", "1. Shout freeze", "2. Take the pose", "Host:", "Get a location", "Freeze on big shapes", "Examples"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCategories(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, NewStyles(&buf, theme.Light))
	if err := r.Categories([]string{"Long Form", "Warm-ups"}); err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "Long Form\n") || !strings.Contains(got, "Warm-ups\n") {
		t.Errorf("output = %q", got)
	}
}

func TestPaletteFor(t *testing.T) {
	if PaletteFor(theme.Dark) != DarkPalette() {
		t.Error("dark theme should use the dark palette")
	}
	if PaletteFor(theme.Light) != LightPalette() {
		t.Error("light theme should use the light palette")
	}
	if PaletteFor(theme.Theme("unknown")) != LightPalette() {
		t.Error("unknown theme should fall back to light")
	}
}
