package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"golang-news-curator/pkg/config"
)

const defaultGoogleFinanceBaseURL = "https://www.google.com"

// GoogleFinanceSource scrapes the Google Finance quote page. The exchange is
// not known up front, so it tries the NASDAQ listing first, then NYSE, then
// the bare symbol. Google obfuscates most class names; only the ARIA roles
// are stable, so items carry title and link only.
type GoogleFinanceSource struct {
	client  *http.Client
	baseURL string
}

func NewGoogleFinanceSource(cfg *config.News) *GoogleFinanceSource {
	base := cfg.GoogleFinanceBaseURL
	if base == "" {
		base = defaultGoogleFinanceBaseURL
	}
	return &GoogleFinanceSource{
		client:  newHTTPClient(cfg.RequestTimeout),
		baseURL: base,
	}
}

func (s *GoogleFinanceSource) Name() string {
	return "Google Finance"
}

func (s *GoogleFinanceSource) FetchNews(ctx context.Context, symbol, companyName string, maxItems int) ([]Item, error) {
	candidates := []string{
		fmt.Sprintf("%s/finance/quote/%s:NASDAQ", s.baseURL, symbol),
		fmt.Sprintf("%s/finance/quote/%s:NYSE", s.baseURL, symbol),
		fmt.Sprintf("%s/finance/quote/%s", s.baseURL, symbol),
	}

	var doc *goquery.Document
	var lastErr error
	for _, candidate := range candidates {
		doc, lastErr = fetchDocument(ctx, s.client, candidate)
		if lastErr == nil {
			break
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("failed to fetch google finance page: %w", lastErr)
	}

	articles := doc.Find(`div[role="feed"]`).Find(`div[role="article"]`)
	if articles.Length() == 0 {
		articles = doc.Find(`div[role="article"]`)
	}

	var items []Item
	articles.EachWithBreak(func(_ int, article *goquery.Selection) bool {
		if len(items) >= maxItems {
			return false
		}

		title := strings.TrimSpace(article.Find(`div[role="heading"]`).First().Text())
		if title == "" {
			return true
		}

		link, _ := article.Find("a[href]").First().Attr("href")
		if strings.HasPrefix(link, "/") {
			link = s.baseURL + link
		}

		items = append(items, Item{
			Title: title,
			URL:   link,
		})
		return true
	})

	return items, nil
}
