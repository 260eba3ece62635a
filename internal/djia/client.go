package djia

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// DefaultSources lists the public Dow Jones mirrors in preference order.
// The order is policy, not optimization: earlier mirrors are the more
// reliable ones and later entries exist purely as fallbacks.
var DefaultSources = []string{
	"http://geo.crox.net/djia/",
	"http://www1.geo.crox.net/djia/",
	"http://www2.geo.crox.net/djia/",
	"http://carabiner.peeron.com/xkcd/map/data/",
}

// DefaultTimeout bounds each individual mirror request.
const DefaultTimeout = 5 * time.Second

// ErrSourceUnavailable reports that every configured mirror failed or had
// no value for the requested date.
var ErrSourceUnavailable = errors.New("no Dow Jones source is online, or no value exists for the requested date yet; provide the value manually with -djia")

// SourceError represents a non-success response from a single mirror.
type SourceError struct {
	URL        string
	StatusCode int
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("djia source %s returned status %d", e.URL, e.StatusCode)
}

// Client fetches Dow Jones values with ordered-source fallback.
type Client struct {
	sources    []string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithSources replaces the mirror list. Order is preserved; the first
// mirror to answer wins.
func WithSources(urls []string) Option {
	return func(c *Client) {
		c.sources = urls
	}
}

// WithTimeout sets the per-mirror request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a mirror client with the default source list and
// timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		sources: DefaultSources,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch resolves a calendar date to the Dow Jones value published for it.
// Mirrors are tried strictly in order, once each; the first 200 response
// ends the walk and its trimmed body is returned verbatim. When every
// mirror fails the error wraps ErrSourceUnavailable.
func (c *Client) Fetch(ctx context.Context, date civil.Date) (string, error) {
	key := fmt.Sprintf("%04d/%02d/%02d", date.Year, int(date.Month), date.Day)
	logger := c.logger.With("fetch_id", uuid.NewString(), "date", key)

	for _, base := range c.sources {
		value, err := c.fetchOne(ctx, base+key)
		if err != nil {
			if ctx.Err() != nil {
				// The caller gave up; don't sweep through the remaining
				// mirrors on a dead context.
				return "", ctx.Err()
			}
			logger.Debug("source failed", "url", base, "error", err)
			continue
		}
		logger.Debug("source answered", "url", base, "value", value)
		return value, nil
	}

	return "", fmt.Errorf("tried %d sources: %w", len(c.sources), ErrSourceUnavailable)
}

func (c *Client) fetchOne(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &SourceError{URL: url, StatusCode: resp.StatusCode}
	}

	return strings.TrimSpace(string(body)), nil
}
