package filter

import (
	"fmt"

	"github.com/kailas-cloud/improvdex/internal/domain"
	"github.com/kailas-cloud/improvdex/internal/domain/game"
)

// Filters is a set of optional attribute constraints combined with AND.
// A zero value imposes no constraint.
type Filters struct {
	category   string
	difficulty game.Difficulty
	minPlayers *int
	maxPlayers *int
	audience   *bool
}

// New validates and creates Filters. Empty strings, nil pointers and zero
// player bounds mean "no constraint".
func New(category string, difficulty game.Difficulty, minPlayers, maxPlayers *int, audience *bool) (Filters, error) {
	if difficulty != "" && !difficulty.IsValid() {
		return Filters{}, fmt.Errorf("%w: unknown difficulty %q (want one of %v)",
			domain.ErrInvalidQuery, difficulty, game.Difficulties())
	}
	minPlayers, maxPlayers = bound(minPlayers), bound(maxPlayers)
	if minPlayers != nil && *minPlayers < 0 {
		return Filters{}, fmt.Errorf("%w: min_players must not be negative", domain.ErrInvalidQuery)
	}
	if maxPlayers != nil && *maxPlayers < 0 {
		return Filters{}, fmt.Errorf("%w: max_players must not be negative", domain.ErrInvalidQuery)
	}
	if minPlayers != nil && maxPlayers != nil && *minPlayers > *maxPlayers {
		return Filters{}, fmt.Errorf("%w: min_players %d exceeds max_players %d",
			domain.ErrInvalidQuery, *minPlayers, *maxPlayers)
	}
	return Reconstruct(category, difficulty, minPlayers, maxPlayers, audience), nil
}

// Reconstruct creates Filters without validation.
func Reconstruct(category string, difficulty game.Difficulty, minPlayers, maxPlayers *int, audience *bool) Filters {
	f := Filters{
		category:   category,
		difficulty: difficulty,
		minPlayers: bound(minPlayers),
		maxPlayers: bound(maxPlayers),
	}
	if audience != nil {
		v := *audience
		f.audience = &v
	}
	return f
}

// Category returns the exact category constraint ("" = any).
func (f Filters) Category() string { return f.category }

// Difficulty returns the exact difficulty constraint ("" = any).
func (f Filters) Difficulty() game.Difficulty { return f.difficulty }

// MinPlayers returns the lower bound on a game's minimum player count.
func (f Filters) MinPlayers() *int { return f.minPlayers }

// MaxPlayers returns the upper bound on a game's maximum player count.
func (f Filters) MaxPlayers() *int { return f.maxPlayers }

// AudienceParticipation returns the audience flag constraint.
func (f Filters) AudienceParticipation() *bool { return f.audience }

// HasPlayerBounds reports whether either player bound is set.
func (f Filters) HasPlayerBounds() bool {
	return f.minPlayers != nil || f.maxPlayers != nil
}

// IsEmpty reports whether no constraint is active.
func (f Filters) IsEmpty() bool {
	return f.category == "" && f.difficulty == "" && !f.HasPlayerBounds() && f.audience == nil
}

// bound copies a player bound; zero is treated as unset.
func bound(p *int) *int {
	if p == nil || *p == 0 {
		return nil
	}
	v := *p
	return &v
}
