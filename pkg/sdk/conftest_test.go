package sdk

import (
	"net/http/httptest"
	"testing"
	"time"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/improvdex/internal/db/memory"
	domcat "github.com/kailas-cloud/improvdex/internal/domain/catalog"
	"github.com/kailas-cloud/improvdex/internal/domain/game"
	prefrepo "github.com/kailas-cloud/improvdex/internal/repository/preference"
	chiTransport "github.com/kailas-cloud/improvdex/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/improvdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/improvdex/internal/usecase/health"
	preferenceuc "github.com/kailas-cloud/improvdex/internal/usecase/preference"
	queryuc "github.com/kailas-cloud/improvdex/internal/usecase/query"
)

const testAPIKey = "test-key"

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func testCatalog(t *testing.T) *domcat.Catalog {
	t.Helper()
	games := []game.Game{
		game.Reconstruct(game.Params{
			ID: "freeze-tag", Name: "Freeze Tag", Category: "Scene Games",
			Difficulty:            game.Beginner,
			PlayerCount:           &game.PlayerCount{Min: 4, Max: 10, Optimal: 6},
			Rules:                 []string{"Shout freeze and take over the pose"},
			AudienceParticipation: boolPtr(true),
		}),
		game.Reconstruct(game.Params{
			ID: "harold", Name: "Harold", Category: "Long Form",
			Difficulty:  game.Advanced,
			PlayerCount: &game.PlayerCount{Min: 5, Max: 10, Optimal: 7},
			Tips:        []game.Tip{game.NewRoleTip("coach", []string{"Run openings separately"})},
		}),
		game.Reconstruct(game.Params{
			ID: "zip-zap", Name: "Zip Zap Zop", Category: "Warm-ups",
			Difficulty:  game.Beginner,
			PlayerCount: &game.PlayerCount{Min: 5, Max: 20, Optimal: 10},
		}),
	}
	cat, err := domcat.New(games, "v-test", time.Unix(1700000000, 0))
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

// newTestServer runs the real HTTP stack over an in-memory store.
// A nil catalog simulates a server that has not loaded one yet.
func newTestServer(t *testing.T, cat *domcat.Catalog) *httptest.Server {
	t.Helper()
	holder := cataloguc.NewHolder(cat)
	srv := chiTransport.NewServer(
		queryuc.New(holder, nil),
		preferenceuc.New(prefrepo.New(memory.NewStore(), time.Hour)),
		healthuc.New(holder, nil),
		zap.NewNop(),
	)

	r := gochi.NewRouter()
	r.Use(chiTransport.BearerAuthMiddleware([]string{testAPIKey}, true))
	r.Use(chiTransport.ClientIDMiddleware("improvdex_client", time.Hour))
	h := chiTransport.HandlerWithOptions(srv, chiTransport.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: chiTransport.BindErrorHandler,
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func newTestClient(t *testing.T, ts *httptest.Server, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithHTTPClient(ts.Client()), WithAPIKey(testAPIKey)}, opts...)
	c, err := New(ts.URL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}
