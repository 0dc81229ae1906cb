package sdk

import chiTransport "github.com/kailas-cloud/improvdex/internal/transport/chi"

// Wire types shared with the server.
type (
	// GameCard is the summary shown in result lists.
	GameCard = chiTransport.GameCard
	// GameDetails is the full game view.
	GameDetails = chiTransport.GameDetails
	// PlayerCount is the supported cast size.
	PlayerCount = chiTransport.PlayerCount
	// Setup is the preparation block of a game.
	Setup = chiTransport.Setup
	// Tip is a plain tip or a role-attributed group of lines.
	Tip = chiTransport.Tip
	// GameList is a page of query results.
	GameList = chiTransport.GameListResponse
	// CatalogStatus describes the active catalog.
	CatalogStatus = chiTransport.CatalogStatus
)

// Query selects games. Zero values impose no constraint.
type Query struct {
	Text                  string
	Category              string
	Difficulty            string
	MinPlayers            *int
	MaxPlayers            *int
	AudienceParticipation *bool
}

// HealthStatus represents the aggregated server health.
type HealthStatus struct {
	Status  string            // "ok", "degraded", "error"
	Checks  map[string]string // component → "ok"/"error"
	Catalog *CatalogStatus
}
