package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	domcat "github.com/kailas-cloud/improvdex/internal/domain/catalog"
	"github.com/kailas-cloud/improvdex/internal/domain/game"
)

// --- Mocks ---

type mockLoader struct {
	mu    sync.Mutex
	cat   *domcat.Catalog
	err   error
	calls int
}

func (m *mockLoader) Load(_ context.Context) (*domcat.Catalog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.cat, m.err
}

func (m *mockLoader) set(cat *domcat.Catalog, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cat, m.err = cat, err
}

func (m *mockLoader) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type reloadCall struct {
	games int
	err   error
}

type mockRecorder struct {
	mu    sync.Mutex
	calls []reloadCall
}

func (m *mockRecorder) ObserveReload(games int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, reloadCall{games: games, err: err})
}

// --- Helpers ---

func makeCatalog(t *testing.T, version string, ids ...string) *domcat.Catalog {
	t.Helper()
	games := make([]game.Game, 0, len(ids))
	for _, id := range ids {
		games = append(games, game.Reconstruct(game.Params{ID: id, Name: id}))
	}
	cat, err := domcat.New(games, version, time.Now())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
