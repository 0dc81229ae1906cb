package improvdex

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Format is the catalog document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Option configures a Catalog.
type Option interface {
	apply(*catalogConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*catalogConfig)

func (f optionFunc) apply(c *catalogConfig) { f(c) }

type catalogConfig struct {
	format     Format
	httpClient *http.Client

	watch    bool
	debounce time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func newCatalogConfig(opts []Option) *catalogConfig {
	cfg := &catalogConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	return cfg
}

// WithFormat forces the document format.
// By default it is detected from the file extension, falling back to JSON.
func WithFormat(f Format) Option {
	return optionFunc(func(c *catalogConfig) {
		c.format = f
	})
}

// WithHTTPClient sets the client used for http(s) sources.
// Default: a client with a 15s timeout.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *catalogConfig) {
		c.httpClient = hc
	})
}

// WithWatch reloads the catalog whenever its file changes.
// Bursts of changes within debounce collapse into one reload; zero uses 250ms.
// Ignored for http(s) sources.
func WithWatch(debounce time.Duration) Option {
	return optionFunc(func(c *catalogConfig) {
		c.watch = true
		c.debounce = debounce
	})
}

// WithLogger enables structured logging for catalog operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *catalogConfig) {
		c.logger = l
	})
}

// WithPrometheus registers catalog metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *catalogConfig) {
		c.metricsReg = reg
	})
}
