package sdk

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/improvdex/internal/observe"
)

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observe.Observer, error) {
	return observe.New(observe.Config{
		Subsystem:  "sdk",
		Status:     callStatus,
		Logger:     logger,
		Registerer: reg,
	})
}

// callStatus labels a call by the server's error code, so dashboards can
// tell a missing game from an outage. Failures without a response are "transport".
func callStatus(err error) string {
	if err == nil {
		return "ok"
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "transport"
	}
	if apiErr.Code == "" {
		return "http_error"
	}
	return apiErr.Code
}
