package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/mhollis/diamond-stats/internal/page"
)

const (
	UserAgent = "diamond-stats/1.0 (github.com/mhollis/diamond-stats)"
	Timeout   = 30 * time.Second

	// maxRetries bounds transient-failure retries per page.
	maxRetries = 3
)

// Fetcher is the page-fetch collaborator: given a URL, return a queryable
// document. Implementations may fail transiently; the parsing core never
// retries, so any retry policy lives behind this interface.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*page.Document, error)
}

// Client fetches pages over HTTP with retry and a politeness delay between
// requests.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Client. delay is the minimum interval between page
// loads; zero disables the limiter.
func NewClient(delay time.Duration) *Client {
	c := &Client{
		client: &http.Client{Timeout: Timeout},
	}
	if delay > 0 {
		c.limiter = rate.NewLimiter(rate.Every(delay), 1)
	}
	return c
}

// Fetch loads one page and materializes it as a Document. Transient HTTP
// failures and non-200 responses are retried with exponential backoff up to
// maxRetries; malformed requests and unparseable bodies are not.
func (c *Client) Fetch(ctx context.Context, url string) (*page.Document, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	var doc *page.Document
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close() // nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		d, err := page.NewDocument(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		doc = d
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return nil, err
	}
	return doc, nil
}
