package news

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/mmcdole/gofeed"

	"golang-news-curator/pkg/config"
	"golang-news-curator/pkg/utils"
)

const defaultGoogleNewsRSSBaseURL = "https://news.google.com"

// GoogleNewsRSSSource reads the Google News search feed. It sits last in the
// chain as the aggregator of last resort: the feed is always reachable but
// its links point back through Google's redirector.
type GoogleNewsRSSSource struct {
	parser  *gofeed.Parser
	baseURL string
}

func NewGoogleNewsRSSSource(cfg *config.News) *GoogleNewsRSSSource {
	base := cfg.GoogleNewsRSSBaseURL
	if base == "" {
		base = defaultGoogleNewsRSSBaseURL
	}
	return &GoogleNewsRSSSource{
		parser:  gofeed.NewParser(),
		baseURL: base,
	}
}

func (s *GoogleNewsRSSSource) Name() string {
	return "Google News"
}

func (s *GoogleNewsRSSSource) FetchNews(ctx context.Context, symbol, companyName string, maxItems int) ([]Item, error) {
	feedURL := fmt.Sprintf("%s/rss/search?q=%s+stock&hl=en-US&gl=US&ceid=US:en", s.baseURL, url.QueryEscape(symbol))

	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rss feed: %w", err)
	}

	sort.Slice(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return false
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if len(items) >= maxItems {
			break
		}

		title := utils.CleanToValidUTF8(entry.Title)
		source := ""
		// Google News appends the publisher to the headline.
		if idx := strings.LastIndex(title, " - "); idx > 0 {
			source = strings.TrimSpace(title[idx+3:])
			title = strings.TrimSpace(title[:idx])
		}
		if title == "" {
			continue
		}

		date := ""
		if entry.PublishedParsed != nil {
			date = entry.PublishedParsed.Format("2006-01-02")
		}

		items = append(items, Item{
			Title:         title,
			Summary:       utils.CleanToValidUTF8(entry.Description),
			URL:           entry.Link,
			Source:        source,
			PublishedDate: date,
		})
	}
	return items, nil
}
