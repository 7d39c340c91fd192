// Package gateway is the HTTP client for the upstream label/auth API.
//
// The upstream may be deployed redundantly across independent hosting
// providers with independent cold-start behaviour, so the client carries an
// ordered list of candidate base URLs: it probes them once at startup and
// retries a failed request against the next candidate exactly once before
// surfacing the error.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/primelabel/labelview/internal/api/metrics"
	"github.com/primelabel/labelview/internal/core/domain"
)

const (
	// DefaultTimeout tolerates an upstream host waking from a cold start.
	DefaultTimeout = 15 * time.Second

	probeTimeout = 3 * time.Second

	labelCacheTTL     = 5 * time.Minute
	labelCacheSweep   = 10 * time.Minute
	defaultUserAgent  = "labelview"
	maxErrorBodyBytes = 64 << 10
)

// Config holds the settings for constructing a Client.
type Config struct {
	// BaseURLs is the ordered candidate list; the first entry is the
	// primary and is used until resolution or failover says otherwise.
	BaseURLs []string

	// Timeout applies per request when the context has no deadline.
	Timeout time.Duration

	UserAgent string
}

// Client performs authenticated requests against the upstream API with
// cross-host failover. Safe for concurrent use.
type Client struct {
	bases     []string
	hc        *http.Client
	timeout   time.Duration
	userAgent string
	log       zerolog.Logger

	mu     sync.RWMutex
	active string

	labels *cache.Cache
}

// New constructs a Client. At least one base URL is required.
func New(cfg Config, log zerolog.Logger) (*Client, error) {
	if len(cfg.BaseURLs) == 0 {
		return nil, errors.New("gateway: at least one base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		bases:     append([]string(nil), cfg.BaseURLs...),
		hc:        &http.Client{Transport: transport},
		timeout:   timeout,
		userAgent: ua,
		log:       log,
		active:    cfg.BaseURLs[0],
		labels:    cache.New(labelCacheTTL, labelCacheSweep),
	}, nil
}

// ActiveBase returns the base URL currently used for requests.
func (c *Client) ActiveBase() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

func (c *Client) setActive(base string) {
	c.mu.Lock()
	c.active = base
	c.mu.Unlock()
}

// ResolveBaseURL probes each candidate with GET /health and selects the
// first that answers 2xx; the primary stays selected when every probe
// fails. Meant to run once at startup, typically in its own goroutine:
// requests issued before it completes simply use the primary, and the
// per-request failover covers the race.
func (c *Client) ResolveBaseURL(ctx context.Context) string {
	for _, base := range c.bases {
		if c.probe(ctx, base) {
			metrics.HealthProbesTotal.WithLabelValues("ok").Inc()
			c.setActive(base)
			c.log.Info().Str("base_url", base).Msg("upstream host selected")
			return base
		}
		metrics.HealthProbesTotal.WithLabelValues("fail").Inc()
	}

	c.log.Warn().Str("base_url", c.bases[0]).Msg("no upstream host answered the health probe, keeping primary")
	c.setActive(c.bases[0])
	return c.bases[0]
}

// Healthy probes the currently active host. Used by the readiness endpoint.
func (c *Client) Healthy(ctx context.Context) bool {
	return c.probe(ctx, c.ActiveBase())
}

func (c *Client) probe(ctx context.Context, base string) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/health", http.NoBody)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("base_url", base).Msg("health probe failed")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// nextBase returns the first candidate other than current, or "" when the
// list has no alternate.
func (c *Client) nextBase(current string) string {
	for _, base := range c.bases {
		if base != current {
			return base
		}
	}
	return ""
}

// do issues one request with at most one cross-host retry. A bearer token is
// attached when non-empty. On success the response body is decoded into out
// (when non-nil); on failure the returned error carries the backend message
// when one was sent.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	base := c.ActiveBase()

	err := c.attempt(ctx, base, method, path, token, body, out)
	if err == nil {
		return nil
	}

	alt := c.nextBase(base)
	if alt == "" {
		return err
	}

	metrics.UpstreamFailoversTotal.Inc()
	c.log.Warn().
		Err(err).
		Str("base_url", base).
		Str("retry_base_url", alt).
		Str("path", path).
		Msg("upstream request failed, retrying on alternate host")

	if retryErr := c.attempt(ctx, alt, method, path, token, body, out); retryErr != nil {
		return retryErr
	}

	// The alternate answered; route subsequent requests there.
	c.setActive(alt)
	return nil
}

func (c *Client) attempt(ctx context.Context, base, method, path, token string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, reader)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(base, "error").Inc()
		c.log.Debug().Err(err).Str("base_url", base).Str("path", path).Msg("upstream request error")
		return &domain.UpstreamError{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequestsTotal.WithLabelValues(base, "error").Inc()
		return &domain.UpstreamError{
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(resp.Body),
		}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(base, "ok").Inc()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway: decode response: %w", err)
	}
	return nil
}

// decodeErrorMessage pulls the human-readable message out of an error body.
// The upstream uses {"message": ...}; {"error": ...} is accepted too.
func decodeErrorMessage(r io.Reader) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBodyBytes)).Decode(&envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
