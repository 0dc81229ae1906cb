package improvdex

import (
	"github.com/kailas-cloud/improvdex/internal/domain/game"
	"github.com/kailas-cloud/improvdex/internal/domain/query/filter"
)

// Game is a single catalog entry.
type Game = game.Game

// Tip is a plain or role-labelled piece of advice attached to a game.
type Tip = game.Tip

// PlayerCount is the cast size range of a game.
type PlayerCount = game.PlayerCount

// Difficulty is the skill level a game is pitched at.
type Difficulty = game.Difficulty

// Difficulty levels.
const (
	Beginner     = game.Beginner
	Intermediate = game.Intermediate
	Advanced     = game.Advanced
)

// Difficulties lists the known levels from easiest to hardest.
func Difficulties() []Difficulty { return game.Difficulties() }

// Tip kinds.
const (
	TipPlain = game.TipPlain
	TipRole  = game.TipRole
)

// Filters are optional attribute constraints combined with AND.
// Zero values, including zero player bounds, impose no constraint.
type Filters struct {
	Category              string
	Difficulty            Difficulty
	MinPlayers            *int
	MaxPlayers            *int
	AudienceParticipation *bool
}

func (f Filters) toDomain() (filter.Filters, error) {
	d := f.Difficulty
	if d != "" {
		d, _ = game.ParseDifficulty(string(d))
	}
	res, err := filter.New(f.Category, d, f.MinPlayers, f.MaxPlayers, f.AudienceParticipation)
	if err != nil {
		return filter.Filters{}, err //nolint:wrapcheck // domain error already carries ErrInvalidQuery
	}
	return res, nil
}
