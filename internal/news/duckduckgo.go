package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"golang-news-curator/pkg/config"
)

const defaultDuckDuckGoBaseURL = "https://duckduckgo.com"

// DuckDuckGoSource runs a web search against the DuckDuckGo HTML endpoint.
// It is the broadest net in the chain: results are generic search hits, so
// the relevance filter downstream carries more weight here than elsewhere.
type DuckDuckGoSource struct {
	client  *http.Client
	baseURL string
}

func NewDuckDuckGoSource(cfg *config.News) *DuckDuckGoSource {
	base := cfg.DuckDuckGoBaseURL
	if base == "" {
		base = defaultDuckDuckGoBaseURL
	}
	return &DuckDuckGoSource{
		client:  newHTTPClient(cfg.RequestTimeout),
		baseURL: base,
	}
}

func (s *DuckDuckGoSource) Name() string {
	return "DuckDuckGo"
}

func (s *DuckDuckGoSource) FetchNews(ctx context.Context, symbol, companyName string, maxItems int) ([]Item, error) {
	query := strings.TrimSpace(fmt.Sprintf("%s %s stock news", companyName, symbol))
	searchURL := fmt.Sprintf("%s/html/?q=%s", s.baseURL, url.QueryEscape(query))

	doc, err := fetchDocument(ctx, s.client, searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to search duckduckgo: %w", err)
	}

	var items []Item
	doc.Find("div.result").EachWithBreak(func(_ int, result *goquery.Selection) bool {
		if len(items) >= maxItems {
			return false
		}

		titleLink := result.Find("a.result__a").First()
		title := strings.TrimSpace(titleLink.Text())
		if title == "" {
			return true
		}

		link, _ := titleLink.Attr("href")
		summary := strings.TrimSpace(result.Find("a.result__snippet").First().Text())
		source := strings.TrimSpace(result.Find("a.result__url").First().Text())

		items = append(items, Item{
			Title:   title,
			Summary: summary,
			URL:     link,
			Source:  source,
		})
		return true
	})

	return items, nil
}
