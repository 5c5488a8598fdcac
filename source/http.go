package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

// HTTP fetches archives from a base URL. The response body is buffered whole
// before it is returned; retrieval blocks until the archive is complete.
type HTTP struct {
	base    string
	client  *http.Client
	limiter *rate.Limiter
}

// HTTPOption configures an HTTP source.
type HTTPOption func(*HTTP)

// WithHTTPClient sets the client used for requests. Defaults to
// http.DefaultClient.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTP) {
		if c != nil {
			s.client = c
		}
	}
}

// WithRateLimiter throttles requests against the mirror. The limiter's Wait
// blocks before each fetch, honoring context cancellation.
func WithRateLimiter(l *rate.Limiter) HTTPOption {
	return func(s *HTTP) {
		s.limiter = l
	}
}

// NewHTTP creates an HTTP source rooted at baseURL.
func NewHTTP(baseURL string, opts ...HTTPOption) (*HTTP, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("source: invalid base URL %q: %w", baseURL, err)
	}
	s := &HTTP{
		base:   strings.TrimRight(baseURL, "/"),
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Fetch downloads the named archive and returns its full body.
func (s *HTTP) Fetch(ctx context.Context, name string) ([]byte, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u := s.base + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("source: %s: %w", name, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("source: %s: unexpected status %s", name, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", name, err)
	}
	return data, nil
}
