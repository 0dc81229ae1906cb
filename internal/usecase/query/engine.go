package query

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/improvdex/internal/domain/game"
	"github.com/kailas-cloud/improvdex/internal/domain/query/filter"
)

// Search returns the games whose searchable text contains text, case-insensitively.
// Blank text returns games unchanged. Matching games keep their input order.
func Search(games []*game.Game, text string) []*game.Game {
	term := strings.ToLower(strings.TrimSpace(text))
	if term == "" {
		return games
	}

	matched := make([]*game.Game, 0, len(games))
	for _, g := range games {
		if g != nil && matches(g, term) {
			matched = append(matched, g)
		}
	}
	return matched
}

// matches checks name, setup, rules, tips, examples, tags and category in that order.
func matches(g *game.Game, term string) bool {
	if contains(g.Name(), term) {
		return true
	}
	if s := g.Setup(); s != nil && contains(s.Description, term) {
		return true
	}
	if anyContains(g.Rules(), term) {
		return true
	}
	for _, tip := range g.Tips() {
		if anyContains(tip.SearchableText(), term) {
			return true
		}
	}
	if anyContains(g.Examples(), term) {
		return true
	}
	if anyContains(g.Tags(), term) {
		return true
	}
	return contains(g.Category(), term)
}

func contains(s, term string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), term)
}

func anyContains(ss []string, term string) bool {
	for _, s := range ss {
		if contains(s, term) {
			return true
		}
	}
	return false
}

// Filter returns the games satisfying every active constraint in f.
// Player bounds are a containment check on the game's range:
// game.min >= f.MinPlayers and game.max <= f.MaxPlayers.
func Filter(games []*game.Game, f filter.Filters) []*game.Game {
	if f.IsEmpty() {
		return games
	}

	kept := make([]*game.Game, 0, len(games))
	for _, g := range games {
		if g != nil && accepts(g, f) {
			kept = append(kept, g)
		}
	}
	return kept
}

func accepts(g *game.Game, f filter.Filters) bool {
	if f.Category() != "" && g.Category() != f.Category() {
		return false
	}
	if f.Difficulty() != "" && g.Difficulty() != f.Difficulty() {
		return false
	}
	if f.HasPlayerBounds() {
		pc := g.PlayerCount()
		if pc == nil {
			return false
		}
		if lo := f.MinPlayers(); lo != nil && pc.Min < *lo {
			return false
		}
		if hi := f.MaxPlayers(); hi != nil && pc.Max > *hi {
			return false
		}
	}
	if want := f.AudienceParticipation(); want != nil {
		got := g.AudienceParticipation()
		if got == nil || *got != *want {
			return false
		}
	}
	return true
}

// SearchAndFilter narrows by text first, then by attributes.
func SearchAndFilter(games []*game.Game, text string, f filter.Filters) []*game.Game {
	return Filter(Search(games, text), f)
}

// DistinctCategories returns each category once, sorted ascending.
func DistinctCategories(games []*game.Game) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, g := range games {
		if g == nil || g.Category() == "" {
			continue
		}
		if _, ok := seen[g.Category()]; ok {
			continue
		}
		seen[g.Category()] = struct{}{}
		categories = append(categories, g.Category())
	}
	sort.Strings(categories)
	return categories
}
