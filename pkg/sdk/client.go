package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/kailas-cloud/improvdex/internal/observe"
	chiTransport "github.com/kailas-cloud/improvdex/internal/transport/chi"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// Client is the improvdex HTTP API client. It is safe for concurrent use.
type Client struct {
	baseURL string
	hc      *http.Client
	apiKey  string
	obs     *observe.Observer

	mu       sync.RWMutex
	clientID string
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("improvdex sdk: invalid base url %q", baseURL)
	}

	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: defaultTimeout}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:  strings.TrimRight(u.String(), "/"),
		hc:       cfg.httpClient,
		apiKey:   cfg.apiKey,
		clientID: cfg.clientID,
		obs:      obs,
	}, nil
}

// ClientID returns the preference client id, empty until one is configured or issued.
func (c *Client) ClientID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientID
}

func (c *Client) rememberClientID(resp *http.Response) {
	id := resp.Header.Get(chiTransport.ClientIDHeader)
	if id == "" {
		return
	}
	c.mu.Lock()
	if c.clientID == "" {
		c.clientID = id
	}
	c.mu.Unlock()
}

// do sends a request and decodes a JSON body into out for any status in accept.
func (c *Client) do(
	ctx context.Context, method, path string, query url.Values, body, out any, accept ...int,
) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if id := c.ClientID(); id != "" {
		req.Header.Set(chiTransport.ClientIDHeader, id)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.rememberClientID(resp)

	if !accepted(resp.StatusCode, accept) {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func accepted(status int, accept []int) bool {
	if len(accept) == 0 {
		return status >= 200 && status < 300
	}
	for _, s := range accept {
		if s == status {
			return true
		}
	}
	return false
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body chiTransport.ErrorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Code = string(body.Code)
		apiErr.Message = body.Message
	}
	if apiErr.Code == "" && resp.StatusCode == http.StatusUnauthorized {
		apiErr.Code = string(chiTransport.ErrorResponseCodeUnauthorized)
	}
	return apiErr
}
