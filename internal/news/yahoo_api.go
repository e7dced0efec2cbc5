package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-news-curator/pkg/config"
)

const defaultYahooAPIBaseURL = "https://query1.finance.yahoo.com"

type yahooSearchResponse struct {
	News []yahooSearchNews `json:"news"`
}

type yahooSearchNews struct {
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
}

// YahooAPISource queries the Yahoo Finance search API. It is first in the
// chain because it is the only JSON endpoint and by far the most stable.
type YahooAPISource struct {
	client  *http.Client
	baseURL string
}

func NewYahooAPISource(cfg *config.News) *YahooAPISource {
	base := cfg.YahooAPIBaseURL
	if base == "" {
		base = defaultYahooAPIBaseURL
	}
	return &YahooAPISource{
		client:  newHTTPClient(cfg.RequestTimeout),
		baseURL: base,
	}
}

func (s *YahooAPISource) Name() string {
	return "Yahoo Finance API"
}

func (s *YahooAPISource) FetchNews(ctx context.Context, symbol, companyName string, maxItems int) ([]Item, error) {
	searchURL := fmt.Sprintf("%s/v1/finance/search?q=%s&newsCount=%d", s.baseURL, url.QueryEscape(symbol), maxItems)

	var payload yahooSearchResponse
	if err := fetchJSON(ctx, s.client, searchURL, &payload); err != nil {
		return nil, fmt.Errorf("failed to query yahoo search api: %w", err)
	}

	items := make([]Item, 0, len(payload.News))
	for _, n := range payload.News {
		if len(items) >= maxItems {
			break
		}

		date := time.Now().Format("2006-01-02")
		if n.ProviderPublishTime > 0 {
			date = time.Unix(n.ProviderPublishTime, 0).Format("2006-01-02")
		}

		items = append(items, Item{
			Title:         strings.TrimSpace(n.Title),
			URL:           n.Link,
			Source:        n.Publisher,
			PublishedDate: date,
		})
	}
	return items, nil
}
