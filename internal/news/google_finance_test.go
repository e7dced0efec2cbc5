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

const googleFinancePage = `<html><body>
<div role="feed">
  <div role="article">
    <a href="/articles/apple-earnings"><div role="heading">Apple earnings preview</div></a>
  </div>
  <div role="article">
    <a href="https://news.example.com/supplier"><div role="heading">Apple supplier update</div></a>
  </div>
  <div role="article">
    <a href="/articles/untitled"></a>
  </div>
</div>
</body></html>`

func TestGoogleFinanceSourceTriesExchangeSuffixes(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/finance/quote/AAPL" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, googleFinancePage)
	}))
	defer server.Close()

	src := NewGoogleFinanceSource(&config.News{GoogleFinanceBaseURL: server.URL})
	items, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"/finance/quote/AAPL:NASDAQ",
		"/finance/quote/AAPL:NYSE",
		"/finance/quote/AAPL",
	}, paths)

	require.Len(t, items, 2)
	assert.Equal(t, "Apple earnings preview", items[0].Title)
	assert.Equal(t, server.URL+"/articles/apple-earnings", items[0].URL)
	assert.Equal(t, "Apple supplier update", items[1].Title)
	assert.Equal(t, "https://news.example.com/supplier", items[1].URL)
}

func TestGoogleFinanceSourceStopsAtFirstListing(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, googleFinancePage)
	}))
	defer server.Close()

	src := NewGoogleFinanceSource(&config.News{GoogleFinanceBaseURL: server.URL})
	_, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestGoogleFinanceSourceArticlesOutsideFeed(t *testing.T) {
	page := `<html><body>
<div role="article"><a href="/a"><div role="heading">Standalone article</div></a></div>
</body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	src := NewGoogleFinanceSource(&config.News{GoogleFinanceBaseURL: server.URL})
	items, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Standalone article", items[0].Title)
}

func TestGoogleFinanceSourceAllListingsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusInternalServerError)
	}))
	defer server.Close()

	src := NewGoogleFinanceSource(&config.News{GoogleFinanceBaseURL: server.URL})
	_, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	assert.Error(t, err)
}
