package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/improvdex/internal/db/memory"
	domcat "github.com/kailas-cloud/improvdex/internal/domain/catalog"
	"github.com/kailas-cloud/improvdex/internal/domain/game"
	prefrepo "github.com/kailas-cloud/improvdex/internal/repository/preference"
	cataloguc "github.com/kailas-cloud/improvdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/improvdex/internal/usecase/health"
	preferenceuc "github.com/kailas-cloud/improvdex/internal/usecase/preference"
	queryuc "github.com/kailas-cloud/improvdex/internal/usecase/query"
)

func boolPtr(b bool) *bool { return &b }

func testCatalog(t *testing.T) *domcat.Catalog {
	t.Helper()
	games := []game.Game{
		game.Reconstruct(game.Params{
			ID: "freeze-tag", Name: "Freeze Tag", Category: "Scene Games",
			Difficulty:            game.Beginner,
			Tags:                  []string{"physical"},
			PlayerCount:           &game.PlayerCount{Min: 4, Max: 10, Optimal: 6},
			Rules:                 []string{"Shout freeze and take over the pose"},
			AudienceParticipation: boolPtr(true),
		}),
		game.Reconstruct(game.Params{
			ID: "alphabet", Name: "Alphabet Game", Category: "Scene Games",
			Difficulty:            game.Intermediate,
			PlayerCount:           &game.PlayerCount{Min: 2, Max: 2, Optimal: 2},
			AudienceParticipation: boolPtr(true),
		}),
		game.Reconstruct(game.Params{
			ID: "harold", Name: "Harold", Category: "Long Form",
			Difficulty:  game.Advanced,
			PlayerCount: &game.PlayerCount{Min: 5, Max: 10, Optimal: 7},
			Setup:       &game.Setup{Description: "Opening then three beats"},
			Tips: []game.Tip{
				game.NewPlainTip("Callbacks reward the audience"),
				game.NewRoleTip("coach", []string{"Run openings separately"}),
			},
			AudienceParticipation: boolPtr(false),
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

func newTestHandler(t *testing.T, cat *domcat.Catalog) http.Handler {
	t.Helper()
	holder := cataloguc.NewHolder(cat)
	srv := NewServer(
		queryuc.New(holder, nil),
		preferenceuc.New(prefrepo.New(memory.NewStore(), time.Hour)),
		healthuc.New(holder, nil),
		zap.NewNop(),
	)

	r := gochi.NewRouter()
	r.Use(ClientIDMiddleware("improvdex_client", time.Hour))
	return HandlerWithOptions(srv, ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: BindErrorHandler})
}

func do(t *testing.T, h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
	return v
}

func ids(items []GameCard) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestListGames(t *testing.T) {
	h := newTestHandler(t, testCatalog(t))

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"all sorted by name", "/games", []string{"alphabet", "freeze-tag", "harold", "zip-zap"}},
		{"text search", "/games?q=FREEZE", []string{"freeze-tag"}},
		{"search in role tips", "/games?q=openings", []string{"harold"}},
		{"category and difficulty", "/games?category=Scene+Games&difficulty=Beginner", []string{"freeze-tag"}},
		{"player bounds are containment", "/games?min_players=4&max_players=10", []string{"freeze-tag", "harold"}},
		{"audience false skips unknown", "/games?audience_participation=false", []string{"harold"}},
		{"no match", "/games?q=zzzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, "GET", tt.target, "", nil)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
			}
			resp := decode[GameListResponse](t, rr)
			got := ids(resp.Items)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
			if resp.Total != len(tt.want) {
				t.Errorf("total = %d", resp.Total)
			}
			if resp.CatalogVersion != "v-test" {
				t.Errorf("catalog_version = %q", resp.CatalogVersion)
			}
		})
	}
}

func TestListGames_CardShape(t *testing.T) {
	h := newTestHandler(t, testCatalog(t))
	rr := do(t, h, "GET", "/games?q=freeze", "", nil)

	resp := decode[GameListResponse](t, rr)
	if len(resp.Items) != 1 {
		t.Fatalf("items = %d", len(resp.Items))
	}
	card := resp.Items[0]
	if card.PlayerCount == nil || card.PlayerCount.Label != "4-10 (best 6)" {
		t.Errorf("player_count = %+v", card.PlayerCount)
	}
	if card.AudienceParticipation == nil || !*card.AudienceParticipation {
		t.Error("audience_participation should be true")
	}
}

func TestListGames_BadRequests(t *testing.T) {
	h := newTestHandler(t, testCatalog(t))

	tests := []struct {
		name     string
		target   string
		wantCode ErrorResponseCode
	}{
		{"non-numeric bound", "/games?min_players=abc", ErrorResponseCodeBadRequest},
		{"non-bool audience", "/games?audience_participation=maybe", ErrorResponseCodeBadRequest},
		{"inverted bounds", "/games?min_players=8&max_players=2", ErrorResponseCodeInvalidQuery},
		{"negative bound", "/games?max_players=-1", ErrorResponseCodeInvalidQuery},
		{"unknown difficulty", "/games?difficulty=expert", ErrorResponseCodeInvalidQuery},
		{"query too long", "/games?q=" + strings.Repeat("a", 257), ErrorResponseCodeInvalidQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, "GET", tt.target, "", nil)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
			if got := decode[ErrorResponse](t, rr); got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestGetGame(t *testing.T) {
	h := newTestHandler(t, testCatalog(t))

	rr := do(t, h, "GET", "/games/harold", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	d := decode[GameDetails](t, rr)
	if d.Name != "Harold" || d.Category != "Long Form" {
		t.Errorf("details = %+v", d.GameCard)
	}
	if d.Setup == nil || d.Setup.Description != "Opening then three beats" {
		t.Errorf("setup = %+v", d.Setup)
	}
	if len(d.Tips) != 2 || d.Tips[0].Kind != "plain" || d.Tips[1].Kind != "role" || d.Tips[1].Role != "coach" {
		t.Errorf("tips = %+v", d.Tips)
	}
	if d.Rules == nil || d.Examples == nil {
		t.Error("empty lists must encode as []")
	}
}

func TestGetGame_NotFound(t *testing.T) {
	h := newTestHandler(t, testCatalog(t))

	rr := do(t, h, "GET", "/games/nope", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if got := decode[ErrorResponse](t, rr); got.Code != ErrorResponseCodeGameNotFound {
		t.Errorf("code = %q", got.Code)
	}
}

func TestListCategories(t *testing.T) {
	h := newTestHandler(t, testCatalog(t))

	rr := do(t, h, "GET", "/categories", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	got := decode[CategoryListResponse](t, rr).Items
	want := []string{"Long Form", "Scene Games", "Warm-ups"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("categories = %v, want %v", got, want)
	}
}

func TestCatalogNotLoaded(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, target := range []string{"/games", "/games/harold", "/categories"} {
		rr := do(t, h, "GET", target, "", nil)
		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: status = %d, want 503", target, rr.Code)
			continue
		}
		if got := decode[ErrorResponse](t, rr); got.Code != ErrorResponseCodeCatalogNotLoaded {
			t.Errorf("%s: code = %q", target, got.Code)
		}
	}

	rr := do(t, h, "GET", "/health", "", nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("health status = %d, want 503", rr.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(t, testCatalog(t))

	rr := do(t, h, "GET", "/health", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	resp := decode[HealthResponse](t, rr)
	if resp.Status != "ok" || resp.Checks["catalog"] != "ok" {
		t.Errorf("health = %+v", resp)
	}
	if resp.Catalog == nil || resp.Catalog.Games != 4 || resp.Catalog.Version != "v-test" {
		t.Errorf("catalog = %+v", resp.Catalog)
	}
}

func TestThemePreference(t *testing.T) {
	h := newTestHandler(t, testCatalog(t))
	const client = "6f1c9a52-4a1e-4a57-9d7e-2a9d3f0c1b11"
	hdr := map[string]string{ClientIDHeader: client}

	rr := do(t, h, "GET", "/preferences/theme", "", hdr)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := decode[ThemeResponse](t, rr).Theme; got != "light" {
		t.Errorf("default theme = %q, want light", got)
	}

	rr = do(t, h, "PUT", "/preferences/theme", `{"theme":"Dark"}`, hdr)
	if rr.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", rr.Code, rr.Body.String())
	}
	if got := decode[ThemeResponse](t, rr).Theme; got != "dark" {
		t.Errorf("PUT theme = %q, want dark", got)
	}

	rr = do(t, h, "GET", "/preferences/theme", "", hdr)
	if got := decode[ThemeResponse](t, rr).Theme; got != "dark" {
		t.Errorf("stored theme = %q, want dark", got)
	}

	rr = do(t, h, "POST", "/preferences/theme/toggle", "", hdr)
	if got := decode[ThemeResponse](t, rr).Theme; got != "light" {
		t.Errorf("toggled theme = %q, want light", got)
	}

	// Other clients are unaffected.
	other := map[string]string{ClientIDHeader: "0d5b8f7e-1111-4c3a-8a8b-9e0f3c2d1a00"}
	rr = do(t, h, "POST", "/preferences/theme/toggle", "", other)
	if got := decode[ThemeResponse](t, rr).Theme; got != "dark" {
		t.Errorf("other client toggle = %q, want dark", got)
	}
}

func TestSetTheme_Invalid(t *testing.T) {
	h := newTestHandler(t, testCatalog(t))

	rr := do(t, h, "PUT", "/preferences/theme", `{"theme":"sepia"}`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decode[ErrorResponse](t, rr); got.Code != ErrorResponseCodeInvalidTheme {
		t.Errorf("code = %q", got.Code)
	}

	rr = do(t, h, "PUT", "/preferences/theme", `{not json`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decode[ErrorResponse](t, rr); got.Code != ErrorResponseCodeBadRequest {
		t.Errorf("code = %q", got.Code)
	}
}
