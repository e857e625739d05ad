package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/yndnr/teeline-go/internal/client/cache"
	"github.com/yndnr/teeline-go/internal/core/domain"
	"github.com/yndnr/teeline-go/internal/telemetry/logger"
	"github.com/yndnr/teeline-go/internal/telemetry/metric"
)

const (
	// DefaultBaseURL is the production service root.
	DefaultBaseURL = "https://api.teeline.co/v1"
	// DefaultUserAgent identifies this client to the service.
	DefaultUserAgent = "Teeline Mobile / Go"
	// DefaultTimeout bounds one round-trip.
	DefaultTimeout = 30 * time.Second

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 4 << 20
)

// Metrics receives request and cache observations.
type Metrics interface {
	ObserveRequest(method, outcome string, elapsed time.Duration)
	ObserveCacheLookup(hit bool)
}

type nopMetrics struct{}

func (nopMetrics) ObserveRequest(string, string, time.Duration) {}
func (nopMetrics) ObserveCacheLookup(bool)                      {}

// Client sends requests to the Teeline service.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	jar       *sessionJar
	cache     cache.Cache[*Response]
	group     singleflight.Group
	limiter   *rate.Limiter
	metrics   Metrics
	logger    logger.Logger
	tls       *tls.Config
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the service root. A missing scheme defaults to https.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) { c.userAgent = agent }
}

// WithTimeout sets the round-trip timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client. Its Jar, if nil, is
// set to the Client's session jar.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTLSConfig sets the TLS configuration of the default transport.
// It has no effect when the transport was replaced by WithHTTPClient.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) { c.tls = cfg }
}

// WithCache sets the response cache used by SendCached.
func WithCache(rc cache.Cache[*Response]) Option {
	return func(c *Client) { c.cache = rc }
}

// WithRateLimit allows at most rps requests per second with the given
// burst. A non-positive rps means unlimited.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client. Without options it talks to DefaultBaseURL with an
// in-memory cache and no rate limit.
func New(opts ...Option) (*Client, error) {
	jar, err := newSessionJar()
	if err != nil {
		return nil, fmt.Errorf("api: create cookie jar: %w", err)
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		http:      &http.Client{Timeout: DefaultTimeout},
		jar:       jar,
		metrics:   nopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		c.http.Jar = c.jar
	}
	if c.tls != nil && c.http.Transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = c.tls
		c.http.Transport = t
	}
	if c.cache == nil {
		c.cache = cache.NewMemory[*Response]()
	}
	if c.metrics == nil {
		c.metrics = nopMetrics{}
	}
	if c.logger == nil {
		c.logger = logger.NewNop()
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")
	if !strings.HasPrefix(c.baseURL, "http://") && !strings.HasPrefix(c.baseURL, "https://") {
		c.baseURL = "https://" + c.baseURL
	}

	return c, nil
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send performs one round-trip. It never retries.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	requestID := ulid.Make().String()
	ctx = logger.WithLogger(logger.WithRequestID(ctx, requestID), c.logger)
	log := logger.L(ctx).With("method", req.Method.String(), "path", req.Path)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, c.fail(log, req, metric.OutcomeTransport, 0, &TransportError{Method: req.Method, Path: req.Path, Err: err})
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method.Verb(), c.baseURL+req.Path, nil)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, c.fail(log, req, metric.OutcomeTransport, time.Since(start), &TransportError{Method: req.Method, Path: req.Path, Err: err})
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	elapsed := time.Since(start)
	if err != nil {
		return nil, c.fail(log, req, metric.OutcomeTransport, elapsed, &TransportError{Method: req.Method, Path: req.Path, Err: err})
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, c.fail(log, req, metric.OutcomeProtocol, elapsed, &ProtocolError{
			Kind:       KindStatus,
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: httpResp.StatusCode,
		})
	}

	resp, err := ParseResponse(raw)
	if err != nil {
		perr := err.(*ProtocolError)
		perr.Method = req.Method
		perr.Path = req.Path
		return nil, c.fail(log, req, metric.OutcomeProtocol, elapsed, perr)
	}

	c.metrics.ObserveRequest(req.Method.String(), metric.OutcomeOK, elapsed)
	log.Debug("request completed", "status", int(resp.Status), "elapsed", elapsed)
	return resp, nil
}

func (c *Client) fail(log logger.Logger, req Request, outcome string, elapsed time.Duration, err error) error {
	c.metrics.ObserveRequest(req.Method.String(), outcome, elapsed)
	log.Warn("request failed", "outcome", outcome, "error", err)
	return err
}

// SendCached returns the memoized response for the request's lowercased
// path, calling Send on a miss. Only envelopes with status OK are stored,
// so a refusal such as "please log in" is retried on the next call.
// A hit makes no network request.
//
// Concurrent misses share one round-trip. It runs detached from the
// caller's cancellation so one caller giving up does not fail the others;
// each caller still returns as soon as its own ctx is done.
func (c *Client) SendCached(ctx context.Context, req Request) (*Response, error) {
	if req.Method != Fetch {
		return nil, fmt.Errorf("%w: got %s", ErrUncacheableMethod, req.Method)
	}

	key := req.CacheKey()
	if resp, ok := c.cache.Get(key); ok {
		c.metrics.ObserveCacheLookup(true)
		return resp, nil
	}
	c.metrics.ObserveCacheLookup(false)

	flight := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		if resp, ok := c.cache.Get(key); ok {
			return resp, nil
		}
		resp, err := c.Send(flight, req)
		if err != nil {
			return nil, err
		}
		if resp.Status == domain.StatusOK {
			if err := c.cache.Put(key, resp); err != nil {
				c.logger.Warn("cache store failed", "path", req.Path, "error", err)
			}
		}
		return resp, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Response), nil
	case <-ctx.Done():
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: ctx.Err()}
	}
}

// Invalidate drops the cached response for path.
func (c *Client) Invalidate(path string) {
	c.cache.Invalidate(CacheKey(path))
}

// Purge drops every cached response.
func (c *Client) Purge() {
	c.cache.Purge()
}

// CacheLen returns the number of cached responses.
func (c *Client) CacheLen() int {
	return c.cache.Len()
}

// ResetCookies forgets the session cookies.
func (c *Client) ResetCookies() error {
	return c.jar.reset()
}

// Close releases the cache.
func (c *Client) Close() error {
	return c.cache.Close()
}
