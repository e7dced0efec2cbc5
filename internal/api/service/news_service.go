package service

import (
	"context"
	"fmt"
	"strings"

	"golang-news-curator/internal/api/config"
	"golang-news-curator/internal/api/dto"
	"golang-news-curator/internal/news"
	"golang-news-curator/pkg/logger"
)

// defaultMaxNewsItems caps a request when the configuration does not.
const defaultMaxNewsItems = 5

// NewsProvider is the slice of the news chain the API exposes.
type NewsProvider interface {
	GetNews(ctx context.Context, symbol, companyName string, maxItems int) []news.Item
}

// NewsService defines the interface for serving curated news.
type NewsService interface {
	GetEnrichedNews(ctx context.Context, symbol, companyName string, maxItems int) (*dto.EnrichedNewsResponse, error)
}

// NewNewsService creates a new news service.
func NewNewsService(cfg *config.Config, provider NewsProvider, logger *logger.Logger) NewsService {
	return &newsService{
		cfg:      cfg,
		provider: provider,
		logger:   logger,
	}
}

type newsService struct {
	cfg      *config.Config
	provider NewsProvider
	logger   *logger.Logger
}

// GetEnrichedNews returns scored and filtered news for a symbol. A request
// without a limit, or with one above the configured maximum, gets the
// configured maximum.
func (s *newsService) GetEnrichedNews(ctx context.Context, symbol, companyName string, maxItems int) (*dto.EnrichedNewsResponse, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrInvalidRequest)
	}

	limit := s.cfg.News.MaxItems
	if limit <= 0 {
		limit = defaultMaxNewsItems
	}
	if maxItems > 0 && maxItems < limit {
		limit = maxItems
	}

	items := s.provider.GetNews(ctx, symbol, strings.TrimSpace(companyName), limit)
	s.logger.Info("Enriched news served",
		logger.StringField("symbol", symbol),
		logger.IntField("count", len(items)))

	if items == nil {
		items = []news.Item{}
	}
	return &dto.EnrichedNewsResponse{
		Symbol:      symbol,
		CompanyName: strings.TrimSpace(companyName),
		Count:       len(items),
		Items:       items,
	}, nil
}
