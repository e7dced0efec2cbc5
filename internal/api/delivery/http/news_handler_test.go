package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-news-curator/internal/api/dto"
	"golang-news-curator/internal/api/service"
	"golang-news-curator/internal/news"
)

// fakeNewsService returns a canned response and records the last request.
type fakeNewsService struct {
	resp        *dto.EnrichedNewsResponse
	err         error
	calls       int
	lastSymbol  string
	lastCompany string
	lastLimit   int
}

var _ service.NewsService = (*fakeNewsService)(nil)

func (s *fakeNewsService) GetEnrichedNews(_ context.Context, symbol, companyName string, maxItems int) (*dto.EnrichedNewsResponse, error) {
	s.calls++
	s.lastSymbol = symbol
	s.lastCompany = companyName
	s.lastLimit = maxItems
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newNewsRequest(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetEnrichedNewsHandler(t *testing.T) {
	svc := &fakeNewsService{resp: &dto.EnrichedNewsResponse{
		Symbol: "AAPL",
		Count:  1,
		Items:  []news.Item{{Title: "Apple beats earnings", Source: "Yahoo Finance"}},
	}}
	handler := NewNewsHandler(svc)

	c, rec := newNewsRequest("/api/v1/news/enriched?symbol=aapl&company=Apple%20Inc.&limit=3")
	require.NoError(t, handler.GetEnrichedNews(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"symbol":"AAPL"`)
	assert.Contains(t, rec.Body.String(), "Apple beats earnings")
	assert.Equal(t, "aapl", svc.lastSymbol)
	assert.Equal(t, "Apple Inc.", svc.lastCompany)
	assert.Equal(t, 3, svc.lastLimit)
}

func TestGetEnrichedNewsHandlerInvalidLimit(t *testing.T) {
	svc := &fakeNewsService{}
	handler := NewNewsHandler(svc)

	c, rec := newNewsRequest("/api/v1/news/enriched?symbol=AAPL&limit=lots")
	require.NoError(t, handler.GetEnrichedNews(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestGetEnrichedNewsHandlerMissingSymbol(t *testing.T) {
	svc := &fakeNewsService{err: fmt.Errorf("%w: symbol is required", service.ErrInvalidRequest)}
	handler := NewNewsHandler(svc)

	c, rec := newNewsRequest("/api/v1/news/enriched")
	require.NoError(t, handler.GetEnrichedNews(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "symbol is required")
}

func TestGetEnrichedNewsHandlerServiceError(t *testing.T) {
	svc := &fakeNewsService{err: fmt.Errorf("chain exhausted")}
	handler := NewNewsHandler(svc)

	c, rec := newNewsRequest("/api/v1/news/enriched?symbol=AAPL")
	require.NoError(t, handler.GetEnrichedNews(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "chain exhausted")
}
