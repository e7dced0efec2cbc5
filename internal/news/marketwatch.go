package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"golang-news-curator/pkg/config"
)

const defaultMarketWatchBaseURL = "https://www.marketwatch.com"

// MarketWatchSource scrapes a MarketWatch instrument page.
type MarketWatchSource struct {
	client  *http.Client
	baseURL string
}

func NewMarketWatchSource(cfg *config.News) *MarketWatchSource {
	base := cfg.MarketWatchBaseURL
	if base == "" {
		base = defaultMarketWatchBaseURL
	}
	return &MarketWatchSource{
		client:  newHTTPClient(cfg.RequestTimeout),
		baseURL: base,
	}
}

func (s *MarketWatchSource) Name() string {
	return "MarketWatch"
}

func (s *MarketWatchSource) FetchNews(ctx context.Context, symbol, companyName string, maxItems int) ([]Item, error) {
	pageURL := fmt.Sprintf("%s/investing/stock/%s", s.baseURL, strings.ToLower(symbol))

	doc, err := fetchDocument(ctx, s.client, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch marketwatch page: %w", err)
	}

	sections := doc.Find(".collection__elements")
	if sections.Length() == 0 {
		sections = doc.Find(".article__content")
	}

	var items []Item
	sections.Find(".element--article, .article__headline").EachWithBreak(func(_ int, article *goquery.Selection) bool {
		if len(items) >= maxItems {
			return false
		}

		titleLink := article.Find("a.link, h3.article__headline a").First()
		title := strings.TrimSpace(titleLink.Text())
		if title == "" {
			return true
		}

		link, _ := titleLink.Attr("href")
		if strings.HasPrefix(link, "/") {
			link = s.baseURL + link
		}

		summary := strings.TrimSpace(article.Find(".article__summary").First().Text())

		items = append(items, Item{
			Title:         title,
			Summary:       summary,
			URL:           link,
			Source:        "MarketWatch",
			PublishedDate: parseMarketWatchTimestamp(article.Find(".article__timestamp").First().Text()),
		})
		return true
	})

	return items, nil
}

// parseMarketWatchTimestamp maps MarketWatch's abbreviated-month timestamps
// ("Dec. 8, 2023") to ISO dates. Relative stamps ("2 hours ago") mean today;
// anything else passes through for NormalizeDate to resolve.
func parseMarketWatchTimestamp(raw string) string {
	ts := strings.TrimSpace(raw)
	if ts == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(ts), "ago") {
		return time.Now().Format("2006-01-02")
	}
	if t, err := time.Parse("Jan. 2, 2006", ts); err == nil {
		return t.Format("2006-01-02")
	}
	return ts
}
