package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kailas-cloud/improvdex/internal/domain"
	"github.com/kailas-cloud/improvdex/internal/domain/game"
)

// Catalog is a read-only snapshot of every game, sorted by name.
type Catalog struct {
	games    []*game.Game
	byID     map[string]*game.Game
	version  string
	loadedAt time.Time
}

// New sorts games by name (case-insensitive, stable) and builds the snapshot.
// Duplicate ids are rejected.
func New(games []game.Game, version string, loadedAt time.Time) (*Catalog, error) {
	sorted := make([]*game.Game, len(games))
	byID := make(map[string]*game.Game, len(games))
	for i := range games {
		g := &games[i]
		if _, dup := byID[g.ID()]; dup {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateGame, g.ID())
		}
		byID[g.ID()] = g
		sorted[i] = g
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name()) < strings.ToLower(sorted[j].Name())
	})

	return &Catalog{
		games:    sorted,
		byID:     byID,
		version:  version,
		loadedAt: loadedAt,
	}, nil
}

// Games returns every game in catalog order. Callers must not modify the slice.
func (c *Catalog) Games() []*game.Game { return c.games }

// Get returns the game with the given id.
func (c *Catalog) Get(id string) (*game.Game, error) {
	g, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrGameNotFound, id)
	}
	return g, nil
}

// Len returns the number of games.
func (c *Catalog) Len() int { return len(c.games) }

// Version identifies the source document the snapshot was built from.
func (c *Catalog) Version() string { return c.version }

// LoadedAt returns when the snapshot was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }
