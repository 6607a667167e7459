package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultCDN serves the Twemoji 72x72 PNG assets. {key} is replaced by the
// emoji key.
const DefaultCDN = "https://cdn.jsdelivr.net/gh/jdecked/twemoji@latest/assets/72x72/{key}.png"

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 5 * time.Second

// DefaultMaxBytes bounds the size of a fetched image.
const DefaultMaxBytes = 1 << 20

// Fetcher downloads the PNG for an emoji key.
type Fetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// StatusError reports a non-2xx CDN response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("resolver: GET %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// HTTPFetcher fetches emoji from a URL template.
type HTTPFetcher struct {
	// URL contains {key}, which is replaced by the emoji key.
	URL string

	// Client defaults to http.DefaultClient.
	Client *http.Client

	// Timeout bounds each fetch; zero uses DefaultTimeout.
	Timeout time.Duration

	// MaxBytes bounds the response body; zero uses DefaultMaxBytes.
	MaxBytes int64
}

// NewHTTPFetcher returns a fetcher for urlTemplate. An empty template uses
// DefaultCDN.
func NewHTTPFetcher(urlTemplate string, timeout time.Duration) *HTTPFetcher {
	if urlTemplate == "" {
		urlTemplate = DefaultCDN
	}
	return &HTTPFetcher{URL: urlTemplate, Timeout: timeout}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := strings.ReplaceAll(f.URL, "{key}", key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("resolver: build request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolver: fetch %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("resolver: read %s: %w", key, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("resolver: %s: body exceeds %d bytes", key, limit)
	}
	return data, nil
}
