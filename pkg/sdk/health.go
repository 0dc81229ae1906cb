package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	chiTransport "github.com/kailas-cloud/improvdex/internal/transport/chi"
)

// Health checks the server. An unhealthy server still yields a HealthStatus.
func (c *Client) Health(ctx context.Context) (hs HealthStatus, err error) {
	start := time.Now()
	defer func() { c.obs.Observe("health", start, err) }()

	var resp chiTransport.HealthResponse
	err = c.do(ctx, http.MethodGet, "/health", nil, nil, &resp,
		http.StatusOK, http.StatusServiceUnavailable)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health: %w", err)
	}
	return HealthStatus{
		Status:  resp.Status,
		Checks:  resp.Checks,
		Catalog: resp.Catalog,
	}, nil
}
