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

const duckDuckGoResults = `<html><body>
<div class="result">
  <a class="result__a" href="https://example.com/apple-rallies">Apple stock rallies after earnings</a>
  <a class="result__snippet">Shares of Apple rose sharply on Thursday.</a>
  <a class="result__url">  www.reuters.com/markets  </a>
</div>
<div class="result">
  <a class="result__snippet">orphan snippet without a headline</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.com/second">Second Apple headline</a>
</div>
</body></html>`

func TestDuckDuckGoSourceFetch(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, duckDuckGoResults)
	}))
	defer server.Close()

	src := NewDuckDuckGoSource(&config.News{DuckDuckGoBaseURL: server.URL})
	items, err := src.FetchNews(context.Background(), "AAPL", "Apple Inc.", 10)

	require.NoError(t, err)
	assert.Equal(t, "/html/", gotPath)
	assert.Equal(t, "Apple Inc. AAPL stock news", gotQuery)

	require.Len(t, items, 2)
	assert.Equal(t, "Apple stock rallies after earnings", items[0].Title)
	assert.Equal(t, "https://example.com/apple-rallies", items[0].URL)
	assert.Equal(t, "Shares of Apple rose sharply on Thursday.", items[0].Summary)
	assert.Equal(t, "www.reuters.com/markets", items[0].Source)

	assert.Equal(t, "Second Apple headline", items[1].Title)
	assert.Empty(t, items[1].Source)
}

func TestDuckDuckGoSourceQueryWithoutCompanyName(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, `<html><body></body></html>`)
	}))
	defer server.Close()

	src := NewDuckDuckGoSource(&config.News{DuckDuckGoBaseURL: server.URL})
	items, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	require.NoError(t, err)
	assert.Equal(t, "AAPL stock news", gotQuery)
	assert.Empty(t, items)
}

func TestDuckDuckGoSourceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusTooManyRequests)
	}))
	defer server.Close()

	src := NewDuckDuckGoSource(&config.News{DuckDuckGoBaseURL: server.URL})
	_, err := src.FetchNews(context.Background(), "AAPL", "", 10)

	assert.Error(t, err)
}
