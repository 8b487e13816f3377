// Package fetch implements the Fetcher interface.
// A location is either an http(s) URL, fetched with a GET request, or the
// path of a case-status page saved from the browser.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gaurav-prasanna/casepipe/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "casepipe/1.0 (https://github.com/gaurav-prasanna/casepipe)"
)

// PageFetcher fetches case pages over HTTP or from disk.
type PageFetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a PageFetcher. Zero values select the defaults.
func New(timeout time.Duration, userAgent string) *PageFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &PageFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves the HTML content at location.
func (f *PageFetcher) Fetch(ctx context.Context, location string) (*core.FetchResult, error) {
	if IsURL(location) {
		return f.fetchURL(ctx, location)
	}
	return readFile(location)
}

// IsURL reports whether location is an http(s) URL rather than a file path.
func IsURL(location string) bool {
	parsed, err := url.Parse(location)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func (f *PageFetcher) fetchURL(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

func readFile(path string) (*core.FetchResult, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading saved page %s: %w", path, err)
	}
	return &core.FetchResult{URL: path, HTML: string(body)}, nil
}
