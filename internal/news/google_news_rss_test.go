package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-news-curator/pkg/config"
)

const googleNewsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>"AAPL stock" - Google News</title>
<item>
  <title>Older AAPL story - CNBC</title>
  <link>https://news.google.com/articles/older</link>
  <pubDate>Thu, 04 Jan 2024 12:00:00 GMT</pubDate>
</item>
<item>
  <title>AAPL hits record high - Reuters</title>
  <link>https://news.google.com/articles/newer</link>
  <pubDate>Fri, 05 Jan 2024 12:00:00 GMT</pubDate>
  <description>Snippet about the rally.</description>
</item>
</channel></rss>`

func TestGoogleNewsRSSSourceFetch(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, googleNewsFeed)
	}))
	defer server.Close()

	src := NewGoogleNewsRSSSource(&config.News{GoogleNewsRSSBaseURL: server.URL})
	items, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	require.NoError(t, err)
	assert.Equal(t, "/rss/search", gotPath)
	assert.Equal(t, "AAPL stock", gotQuery)

	require.Len(t, items, 2)
	// Newest first regardless of feed order.
	assert.Equal(t, "AAPL hits record high", items[0].Title)
	assert.Equal(t, "Reuters", items[0].Source)
	assert.Equal(t, "https://news.google.com/articles/newer", items[0].URL)
	assert.Equal(t, "2024-01-05", items[0].PublishedDate)
	assert.Equal(t, "Snippet about the rally.", items[0].Summary)

	assert.Equal(t, "Older AAPL story", items[1].Title)
	assert.Equal(t, "CNBC", items[1].Source)
}

func TestGoogleNewsRSSSourceRespectsMaxItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, googleNewsFeed)
	}))
	defer server.Close()

	src := NewGoogleNewsRSSSource(&config.News{GoogleNewsRSSBaseURL: server.URL})
	items, err := src.FetchNews(context.Background(), "AAPL", "", 1)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "AAPL hits record high", items[0].Title)
}

func TestGoogleNewsRSSSourceBadFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not xml at all")
	}))
	defer server.Close()

	src := NewGoogleNewsRSSSource(&config.News{GoogleNewsRSSBaseURL: server.URL})
	_, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	assert.Error(t, err)
}
