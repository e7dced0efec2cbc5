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

const yahooNewsPage = `<html><body>
<div data-test="story">
  <h3>AAPL surges on earnings</h3>
  <a href="/news/aapl-surges.html">read more</a>
  <p>Apple shares jumped after the report.</p>
  <div class="author-name">Motley Fool</div>
  <span class="date-label">Jan 5, 2024</span>
</div>
<div data-test="story">
  <a class="headline-link" href="https://example.com/dip">AAPL dips in late trade</a>
</div>
<div data-test="story">
  <p>story without a title is skipped</p>
</div>
</body></html>`

func TestYahooPageSourceFetch(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, yahooNewsPage)
	}))
	defer server.Close()

	src := NewYahooPageSource(&config.News{YahooPageBaseURL: server.URL})
	items, err := src.FetchNews(context.Background(), "AAPL", "Apple Inc.", 10)

	require.NoError(t, err)
	assert.Equal(t, "/quote/AAPL/news", gotPath)
	require.Len(t, items, 2)

	assert.Equal(t, "AAPL surges on earnings", items[0].Title)
	assert.Equal(t, server.URL+"/news/aapl-surges.html", items[0].URL)
	assert.Equal(t, "Apple shares jumped after the report.", items[0].Summary)
	assert.Equal(t, "Motley Fool", items[0].Source)
	assert.Equal(t, "Jan 5, 2024", items[0].PublishedDate)

	assert.Equal(t, "AAPL dips in late trade", items[1].Title)
	assert.Equal(t, "https://example.com/dip", items[1].URL)
	assert.Equal(t, "Yahoo Finance", items[1].Source)
}

func TestYahooPageSourceLegacyMarkup(t *testing.T) {
	page := `<html><body><ul>
<li class="js-stream-content Pos(r)">
  <h3>AAPL roundup</h3>
  <a href="https://example.com/roundup">link</a>
</li>
</ul></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	src := NewYahooPageSource(&config.News{YahooPageBaseURL: server.URL})
	items, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "AAPL roundup", items[0].Title)
}

func TestYahooPageSourceRespectsMaxItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, yahooNewsPage)
	}))
	defer server.Close()

	src := NewYahooPageSource(&config.News{YahooPageBaseURL: server.URL})
	items, err := src.FetchNews(context.Background(), "AAPL", "", 1)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestYahooPageSourceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone away", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	src := NewYahooPageSource(&config.News{YahooPageBaseURL: server.URL})
	_, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	assert.Error(t, err)
}
