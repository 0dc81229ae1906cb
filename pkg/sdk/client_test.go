package sdk

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_InvalidURL(t *testing.T) {
	for _, u := range []string{"", "localhost:8080", "ftp://example.com", "http://"} {
		if _, err := New(u); err == nil {
			t.Errorf("New(%q): expected error", u)
		}
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithAPIKey("secret").apply(cfg)
	if cfg.apiKey != "secret" {
		t.Errorf("apiKey = %q, want secret", cfg.apiKey)
	}

	WithClientID("abc").apply(cfg)
	if cfg.clientID != "abc" {
		t.Errorf("clientID = %q, want abc", cfg.clientID)
	}

	logger := slog.Default()
	WithLogger(logger).apply(cfg)
	if cfg.logger != logger {
		t.Error("expected logger to be set")
	}

	hc := &http.Client{}
	WithHTTPClient(hc).apply(cfg)
	if cfg.httpClient != hc {
		t.Error("expected http client to be set")
	}
}

func TestListGames(t *testing.T) {
	ts := newTestServer(t, testCatalog(t))
	c := newTestClient(t, ts)
	ctx := context.Background()

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"all", Query{}, []string{"freeze-tag", "harold", "zip-zap"}},
		{"text", Query{Text: "FREEZE"}, []string{"freeze-tag"}},
		{"role tip text", Query{Text: "openings"}, []string{"harold"}},
		{"difficulty", Query{Difficulty: "beginner"}, []string{"freeze-tag", "zip-zap"}},
		{"players contained", Query{MinPlayers: intPtr(4), MaxPlayers: intPtr(10)}, []string{"freeze-tag", "harold"}},
		{"audience", Query{AudienceParticipation: boolPtr(true)}, []string{"freeze-tag"}},
		{"combined", Query{Text: "z", Category: "Warm-ups"}, []string{"zip-zap"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := c.ListGames(ctx, tt.q)
			if err != nil {
				t.Fatalf("ListGames: %v", err)
			}
			got := make([]string, len(list.Items))
			for i, g := range list.Items {
				got[i] = g.ID
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("items = %v, want %v", got, tt.want)
			}
			if list.Total != len(tt.want) {
				t.Errorf("total = %d, want %d", list.Total, len(tt.want))
			}
			if list.CatalogVersion != "v-test" {
				t.Errorf("catalog version = %q, want v-test", list.CatalogVersion)
			}
		})
	}
}

func TestListGames_InvalidQuery(t *testing.T) {
	ts := newTestServer(t, testCatalog(t))
	c := newTestClient(t, ts)

	_, err := c.ListGames(context.Background(), Query{MinPlayers: intPtr(9), MaxPlayers: intPtr(3)})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 APIError, got %v", err)
	}
}

func TestGame(t *testing.T) {
	ts := newTestServer(t, testCatalog(t))
	c := newTestClient(t, ts)

	g, err := c.GetGame(context.Background(), "harold")
	if err != nil {
		t.Fatalf("Game: %v", err)
	}
	if g.Name != "Harold" || len(g.Tips) != 1 || g.Tips[0].Role != "coach" {
		t.Errorf("unexpected game: %+v", g)
	}

	_, err = c.GetGame(context.Background(), "nope")
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
}

func TestCategories(t *testing.T) {
	ts := newTestServer(t, testCatalog(t))
	c := newTestClient(t, ts)

	cats, err := c.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	want := []string{"Long Form", "Scene Games", "Warm-ups"}
	if !slices.Equal(cats, want) {
		t.Errorf("categories = %v, want %v", cats, want)
	}
}

func TestCatalogNotLoaded(t *testing.T) {
	ts := newTestServer(t, nil)
	c := newTestClient(t, ts)

	_, err := c.ListGames(context.Background(), Query{})
	if !errors.Is(err, ErrCatalogNotLoaded) {
		t.Errorf("expected ErrCatalogNotLoaded, got %v", err)
	}

	hs, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health should decode a 503 body: %v", err)
	}
	if hs.Status != "error" {
		t.Errorf("status = %q, want error", hs.Status)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, testCatalog(t))
	c := newTestClient(t, ts)

	hs, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if hs.Status != "ok" {
		t.Errorf("status = %q, want ok", hs.Status)
	}
	if hs.Catalog == nil || hs.Catalog.Games != 3 {
		t.Errorf("catalog = %+v, want 3 games", hs.Catalog)
	}
}

func TestThemeLifecycle(t *testing.T) {
	ts := newTestServer(t, testCatalog(t))
	c := newTestClient(t, ts)
	ctx := context.Background()

	theme, err := c.Theme(ctx)
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if theme != "light" {
		t.Errorf("default theme = %q, want light", theme)
	}
	id := c.ClientID()
	if id == "" {
		t.Fatal("expected the server to issue a client id")
	}

	if theme, err = c.SetTheme(ctx, "dark"); err != nil || theme != "dark" {
		t.Fatalf("SetTheme = %q, %v", theme, err)
	}
	if theme, err = c.ToggleTheme(ctx); err != nil || theme != "light" {
		t.Fatalf("ToggleTheme = %q, %v", theme, err)
	}
	if c.ClientID() != id {
		t.Error("client id should stay stable")
	}

	// A new client with the same id sees the stored preference.
	c2 := newTestClient(t, ts, WithClientID(id))
	if _, err := c2.ToggleTheme(ctx); err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if theme, _ = c.Theme(ctx); theme != "dark" {
		t.Errorf("theme = %q, want dark", theme)
	}
}

func TestSetTheme_Invalid(t *testing.T) {
	ts := newTestServer(t, testCatalog(t))
	c := newTestClient(t, ts)

	_, err := c.SetTheme(context.Background(), "sepia")
	if !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestUnauthorized(t *testing.T) {
	ts := newTestServer(t, testCatalog(t))
	c, err := New(ts.URL, WithHTTPClient(ts.Client()))
	if err != nil {
		t.Fatal(err)
	}

	// Reads are open under the writes scope.
	if _, err := c.Categories(context.Background()); err != nil {
		t.Fatalf("Categories without key: %v", err)
	}
	_, err = c.SetTheme(context.Background(), "dark")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAPIError_NonJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()
	c := newTestClient(t, ts)

	_, err := c.Categories(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Unwrap() != nil {
		t.Errorf("unexpected api error: %+v", apiErr)
	}
}

func TestWithPrometheus(t *testing.T) {
	ts := newTestServer(t, testCatalog(t))
	reg := prometheus.NewRegistry()
	c := newTestClient(t, ts, WithPrometheus(reg))

	_, _ = c.Categories(context.Background())
	_, _ = c.GetGame(context.Background(), "nope")

	n, err := testutil.GatherAndCount(reg, "improvdex_sdk_operations_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 2 {
		t.Errorf("series = %d, want 2", n)
	}

	want := `
# HELP improvdex_sdk_operations_total Total operations by type and status.
# TYPE improvdex_sdk_operations_total counter
improvdex_sdk_operations_total{operation="categories",status="ok"} 1
improvdex_sdk_operations_total{operation="get_game",status="game_not_found"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "improvdex_sdk_operations_total"); err != nil {
		t.Errorf("operations: %v", err)
	}

	// Same registry again reuses the collectors.
	if _, err := New(ts.URL, WithPrometheus(reg)); err != nil {
		t.Fatalf("second New: %v", err)
	}
}

func TestCallStatus(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{errors.New("dial tcp: connection refused"), "transport"},
		{&APIError{StatusCode: http.StatusBadGateway}, "http_error"},
		{&APIError{StatusCode: http.StatusNotFound, Code: "game_not_found"}, "game_not_found"},
	}
	for _, tt := range tests {
		if got := callStatus(tt.err); got != tt.want {
			t.Errorf("callStatus(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
