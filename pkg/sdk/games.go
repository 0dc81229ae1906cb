package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	chiTransport "github.com/kailas-cloud/improvdex/internal/transport/chi"
)

// ListGames runs a search-and-filter query. An empty Query lists every game.
func (c *Client) ListGames(ctx context.Context, q Query) (list GameList, err error) {
	start := time.Now()
	defer func() { c.obs.Observe("list_games", start, err) }()

	if err = c.do(ctx, http.MethodGet, "/games", q.values(), nil, &list); err != nil {
		return GameList{}, fmt.Errorf("list games: %w", err)
	}
	return list, nil
}

// GetGame fetches the full details of one game.
func (c *Client) GetGame(ctx context.Context, id string) (g GameDetails, err error) {
	start := time.Now()
	defer func() { c.obs.Observe("get_game", start, err) }()

	if err = c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(id), nil, nil, &g); err != nil {
		return GameDetails{}, fmt.Errorf("get game %q: %w", id, err)
	}
	return g, nil
}

// Categories lists the distinct categories, sorted ascending.
func (c *Client) Categories(ctx context.Context) (cats []string, err error) {
	start := time.Now()
	defer func() { c.obs.Observe("categories", start, err) }()

	var resp chiTransport.CategoryListResponse
	if err = c.do(ctx, http.MethodGet, "/categories", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return resp.Items, nil
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Text != "" {
		v.Set("q", q.Text)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Difficulty != "" {
		v.Set("difficulty", q.Difficulty)
	}
	if q.MinPlayers != nil {
		v.Set("min_players", strconv.Itoa(*q.MinPlayers))
	}
	if q.MaxPlayers != nil {
		v.Set("max_players", strconv.Itoa(*q.MaxPlayers))
	}
	if q.AudienceParticipation != nil {
		v.Set("audience_participation", strconv.FormatBool(*q.AudienceParticipation))
	}
	return v
}
