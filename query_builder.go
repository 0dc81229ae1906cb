package improvdex

import "github.com/kailas-cloud/improvdex/internal/domain/game"

// QueryBuilder is a fluent builder for catalog queries.
type QueryBuilder struct {
	cat *Catalog

	text    string
	filters Filters
}

// Text sets the case-insensitive search text.
func (b *QueryBuilder) Text(q string) *QueryBuilder {
	b.text = q
	return b
}

// Category restricts results to one exact category.
func (b *QueryBuilder) Category(c string) *QueryBuilder {
	b.filters.Category = c
	return b
}

// Difficulty restricts results to one level. Case and surrounding spaces are ignored.
func (b *QueryBuilder) Difficulty(d Difficulty) *QueryBuilder {
	if d != "" {
		d, _ = game.ParseDifficulty(string(d))
	}
	b.filters.Difficulty = d
	return b
}

// MinPlayers keeps games whose minimum cast is at least n.
func (b *QueryBuilder) MinPlayers(n int) *QueryBuilder {
	b.filters.MinPlayers = &n
	return b
}

// MaxPlayers keeps games whose maximum cast is at most n.
func (b *QueryBuilder) MaxPlayers(n int) *QueryBuilder {
	b.filters.MaxPlayers = &n
	return b
}

// Players keeps games whose whole player range fits inside [lo, hi].
func (b *QueryBuilder) Players(lo, hi int) *QueryBuilder {
	return b.MinPlayers(lo).MaxPlayers(hi)
}

// Audience restricts results by audience participation.
func (b *QueryBuilder) Audience(participates bool) *QueryBuilder {
	b.filters.AudienceParticipation = &participates
	return b
}

// Run executes the query. Without text it is a plain filter.
func (b *QueryBuilder) Run() ([]*Game, error) {
	if b.text == "" {
		return b.cat.Filter(b.filters)
	}
	return b.cat.SearchAndFilter(b.text, b.filters)
}
