package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	chiTransport "github.com/kailas-cloud/improvdex/internal/transport/chi"
)

// Theme returns the stored theme, "light" when none was set.
func (c *Client) Theme(ctx context.Context) (theme string, err error) {
	start := time.Now()
	defer func() { c.obs.Observe("get_theme", start, err) }()

	var resp chiTransport.ThemeResponse
	if err = c.do(ctx, http.MethodGet, "/preferences/theme", nil, nil, &resp); err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	return resp.Theme, nil
}

// SetTheme stores "light" or "dark".
func (c *Client) SetTheme(ctx context.Context, theme string) (stored string, err error) {
	start := time.Now()
	defer func() { c.obs.Observe("set_theme", start, err) }()

	var resp chiTransport.ThemeResponse
	body := chiTransport.ThemeRequest{Theme: theme}
	if err = c.do(ctx, http.MethodPut, "/preferences/theme", nil, body, &resp); err != nil {
		return "", fmt.Errorf("set theme: %w", err)
	}
	return resp.Theme, nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func (c *Client) ToggleTheme(ctx context.Context) (theme string, err error) {
	start := time.Now()
	defer func() { c.obs.Observe("toggle_theme", start, err) }()

	var resp chiTransport.ThemeResponse
	if err = c.do(ctx, http.MethodPost, "/preferences/theme/toggle", nil, nil, &resp); err != nil {
		return "", fmt.Errorf("toggle theme: %w", err)
	}
	return resp.Theme, nil
}
