package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultRequestTimeout = 10 * time.Second

// Source fetches raw news items from one upstream provider. Implementations
// return an error when the provider is unreachable or replies with an
// unexpected payload; an empty slice means the provider had nothing for the
// symbol.
type Source interface {
	FetchNews(ctx context.Context, symbol, companyName string, maxItems int) ([]Item, error)
	Name() string
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &http.Client{Timeout: timeout}
}

// newBrowserRequest builds a GET request with the headers most news sites
// expect from a regular browser session.
func newBrowserRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	return req, nil
}

// fetchDocument GETs url with browser headers and parses the body as HTML.
func fetchDocument(ctx context.Context, client *http.Client, url string) (*goquery.Document, error) {
	req, err := newBrowserRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// fetchJSON GETs url with browser headers and decodes the body into v.
func fetchJSON(ctx context.Context, client *http.Client, url string, v interface{}) error {
	req, err := newBrowserRequest(ctx, url)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch json: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch json, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// CachedSource serves FetchNews from a shared TTL cache, delegating to the
// wrapped source on a miss. Errors are never cached.
type CachedSource struct {
	source Source
	cache  *Cache
}

func NewCachedSource(source Source, cache *Cache) *CachedSource {
	return &CachedSource{source: source, cache: cache}
}

func (s *CachedSource) Name() string {
	return s.source.Name()
}

func (s *CachedSource) FetchNews(ctx context.Context, symbol, companyName string, maxItems int) ([]Item, error) {
	key := CacheKey(s.source.Name(), symbol, maxItems)
	if items, ok := s.cache.Get(key); ok {
		return items, nil
	}

	items, err := s.source.FetchNews(ctx, symbol, companyName, maxItems)
	if err != nil {
		return nil, err
	}

	s.cache.Put(key, items)
	return items, nil
}
