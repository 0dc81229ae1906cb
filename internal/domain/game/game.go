package game

import (
	"strings"

	"github.com/kailas-cloud/improvdex/internal/domain"
)

// Setup describes how to prepare a game.
type Setup struct {
	Description string
	Props       []string
}

// Params carries the raw attributes of a game for New.
type Params struct {
	ID                    string
	Name                  string
	Category              string
	Difficulty            Difficulty
	Tags                  []string
	PlayerCount           *PlayerCount
	Setup                 *Setup
	Rules                 []string
	Tips                  []Tip
	Examples              []string
	AudienceParticipation *bool
	Duration              string
}

// Game is a single catalog entry (immutable value object).
type Game struct {
	id          string
	name        string
	category    string
	difficulty  Difficulty
	tags        []string
	playerCount *PlayerCount
	setup       *Setup
	rules       []string
	tips        []Tip
	examples    []string
	audience    *bool
	duration    string
}

// New validates and creates a Game.
// ID and name are required; difficulty may be empty but must be known when set;
// a player count, when present, must satisfy min <= optimal <= max.
func New(p Params) (Game, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return Game{}, domain.NewGameError("", "id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return Game{}, domain.NewGameError(id, "name is required")
	}
	if p.Difficulty != "" && !p.Difficulty.IsValid() {
		return Game{}, domain.NewGameError(id, "unknown difficulty "+string(p.Difficulty))
	}
	if p.PlayerCount != nil {
		if err := p.PlayerCount.Validate(); err != nil {
			return Game{}, domain.NewGameError(id, err.Error())
		}
	}
	p.ID = id
	return Reconstruct(p), nil
}

// Reconstruct creates a Game without validation (trusted data).
func Reconstruct(p Params) Game {
	g := Game{
		id:         p.ID,
		name:       p.Name,
		category:   p.Category,
		difficulty: p.Difficulty,
		tags:       cloneStrings(p.Tags),
		rules:      cloneStrings(p.Rules),
		examples:   cloneStrings(p.Examples),
		duration:   p.Duration,
	}
	if p.PlayerCount != nil {
		pc := *p.PlayerCount
		g.playerCount = &pc
	}
	if p.Setup != nil {
		s := Setup{Description: p.Setup.Description, Props: cloneStrings(p.Setup.Props)}
		g.setup = &s
	}
	if len(p.Tips) > 0 {
		g.tips = make([]Tip, len(p.Tips))
		copy(g.tips, p.Tips)
	}
	if p.AudienceParticipation != nil {
		a := *p.AudienceParticipation
		g.audience = &a
	}
	return g
}

// ID returns the stable identifier.
func (g *Game) ID() string { return g.id }

// Name returns the display title.
func (g *Game) Name() string { return g.name }

// Category returns the group the game was loaded under.
func (g *Game) Category() string { return g.category }

// Difficulty returns the skill level.
func (g *Game) Difficulty() Difficulty { return g.difficulty }

// Tags returns the tag set.
func (g *Game) Tags() []string { return g.tags }

// PlayerCount returns the supported cast size, nil when unknown.
func (g *Game) PlayerCount() *PlayerCount { return g.playerCount }

// Setup returns the preparation notes, nil when absent.
func (g *Game) Setup() *Setup { return g.setup }

// Rules returns the ordered rules.
func (g *Game) Rules() []string { return g.rules }

// Tips returns the ordered tips.
func (g *Game) Tips() []Tip { return g.tips }

// Examples returns the ordered example prompts or scenes.
func (g *Game) Examples() []string { return g.examples }

// AudienceParticipation reports whether the audience joins in, nil when unknown.
func (g *Game) AudienceParticipation() *bool { return g.audience }

// Duration returns the free-form running time, e.g. "5-10 min".
func (g *Game) Duration() string { return g.duration }

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
