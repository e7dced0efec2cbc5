package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"golang-news-curator/pkg/config"
)

const defaultYahooPageBaseURL = "https://finance.yahoo.com"

// YahooPageSource scrapes the Yahoo Finance quote news page. Yahoo rotates
// its class names, so the selectors match on stable attribute fragments with
// a legacy fallback for the older stream markup.
type YahooPageSource struct {
	client  *http.Client
	baseURL string
}

func NewYahooPageSource(cfg *config.News) *YahooPageSource {
	base := cfg.YahooPageBaseURL
	if base == "" {
		base = defaultYahooPageBaseURL
	}
	return &YahooPageSource{
		client:  newHTTPClient(cfg.RequestTimeout),
		baseURL: base,
	}
}

func (s *YahooPageSource) Name() string {
	return "Yahoo Finance"
}

func (s *YahooPageSource) FetchNews(ctx context.Context, symbol, companyName string, maxItems int) ([]Item, error) {
	pageURL := fmt.Sprintf("%s/quote/%s/news", s.baseURL, symbol)

	doc, err := fetchDocument(ctx, s.client, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch yahoo news page: %w", err)
	}

	stories := doc.Find(`div[data-test="story"]`)
	if stories.Length() == 0 {
		stories = doc.Find(`li[class*="js-stream-content"]`)
	}

	var items []Item
	stories.EachWithBreak(func(_ int, story *goquery.Selection) bool {
		if len(items) >= maxItems {
			return false
		}

		title := strings.TrimSpace(story.Find(`h3, a[class*="headline"]`).First().Text())
		if title == "" {
			return true
		}

		link, _ := story.Find("a[href]").First().Attr("href")
		if strings.HasPrefix(link, "/") {
			link = s.baseURL + link
		}

		summary := strings.TrimSpace(story.Find(`p, div[class*="summary"]`).First().Text())

		source := strings.TrimSpace(story.Find(`div[class*="author"], span[class*="provider-name"]`).First().Text())
		if source == "" {
			source = "Yahoo Finance"
		}

		date := strings.TrimSpace(story.Find(`div[class*="date"], span[class*="date"]`).First().Text())

		items = append(items, Item{
			Title:         title,
			Summary:       summary,
			URL:           link,
			Source:        source,
			PublishedDate: date,
		})
		return true
	})

	return items, nil
}
