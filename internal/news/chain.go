package news

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"golang-news-curator/pkg/config"
	"golang-news-curator/pkg/logger"
)

const defaultMaxItems = 10

// Chain tries each source in priority order and returns the first batch that
// survives validation. Failure of a source is routine, not exceptional: it is
// logged at warn level and the next source is consulted.
type Chain struct {
	sources []Source
	logger  *logger.Logger
}

// NewChain builds the default six-source chain from config, each source
// wrapped by a shared TTL cache.
func NewChain(cfg *config.News, log *logger.Logger) *Chain {
	all := []Source{
		NewYahooAPISource(cfg),
		NewYahooPageSource(cfg),
		NewDuckDuckGoSource(cfg),
		NewGoogleFinanceSource(cfg),
		NewMarketWatchSource(cfg),
		NewGoogleNewsRSSSource(cfg),
	}
	return NewChainWithSources(log, NewCache(cfg.CacheTTL), orderSources(all, cfg.SourceOrder)...)
}

// NewChainWithSources wires an explicit source list. Callers that assemble
// their own adapters (and tests) enter here.
func NewChainWithSources(log *logger.Logger, cache *Cache, sources ...Source) *Chain {
	wrapped := make([]Source, 0, len(sources))
	for _, src := range sources {
		wrapped = append(wrapped, NewCachedSource(src, cache))
	}
	return &Chain{sources: wrapped, logger: log}
}

// orderSources reorders the chain per the configured source names. Unknown
// names are skipped; an empty or fully unknown list keeps the default order.
func orderSources(all []Source, order []string) []Source {
	if len(order) == 0 {
		return all
	}
	byName := make(map[string]Source, len(all))
	for _, src := range all {
		byName[strings.ToLower(src.Name())] = src
	}
	ordered := make([]Source, 0, len(order))
	for _, name := range order {
		if src, ok := byName[strings.ToLower(name)]; ok {
			ordered = append(ordered, src)
		}
	}
	if len(ordered) == 0 {
		return all
	}
	return ordered
}

// GetNews walks the chain and returns annotated items from the first source
// whose batch survives the title filter. All sources exhausted means an empty
// slice, never an error.
func (c *Chain) GetNews(ctx context.Context, symbol, companyName string, maxItems int) []Item {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}

	for _, src := range c.sources {
		items, err := src.FetchNews(ctx, symbol, companyName, maxItems)
		if err != nil {
			c.logger.Warn("News source failed",
				logger.StringField("source", src.Name()),
				logger.StringField("symbol", symbol),
				logger.ErrorField(err))
			continue
		}

		valid := make([]Item, 0, len(items))
		for _, item := range items {
			if strings.TrimSpace(item.Title) == "" {
				continue
			}
			valid = append(valid, item)
		}
		if len(valid) == 0 {
			c.logger.Debug("News source returned nothing usable",
				logger.StringField("source", src.Name()),
				logger.StringField("symbol", symbol))
			continue
		}

		c.logger.Info("News fetched",
			logger.StringField("source", src.Name()),
			logger.StringField("symbol", symbol),
			logger.IntField("count", len(valid)))
		return c.annotate(valid, src.Name(), symbol, companyName)
	}

	c.logger.Warn("All news sources exhausted", logger.StringField("symbol", symbol))
	return []Item{}
}

// annotate drops items unrelated to the instrument, repairs URL, source and
// date, scores what remains, and sorts by relevance then sentiment strength.
func (c *Chain) annotate(items []Item, sourceName, symbol, companyName string) []Item {
	now := time.Now()
	annotated := make([]Item, 0, len(items))
	for _, item := range items {
		if !IsRelevant(item, symbol, companyName, now) {
			continue
		}

		if item.URL == "" || !strings.HasPrefix(item.URL, "http") {
			item.URL = FallbackURL(symbol, item.Source)
		}
		if item.Source == "" {
			item.Source = sourceName
		}
		item.PublishedDate = NormalizeDate(item.PublishedDate)

		item.RelevanceScore = RelevanceScore(item, symbol, companyName)
		item.SentimentScore = SentimentScore(item)
		item.Recommendation = DeriveRecommendation(item.SentimentScore, item.Source, item.Title)

		annotated = append(annotated, item)
	}

	sort.SliceStable(annotated, func(i, j int) bool {
		if annotated[i].RelevanceScore != annotated[j].RelevanceScore {
			return annotated[i].RelevanceScore > annotated[j].RelevanceScore
		}
		return math.Abs(annotated[i].SentimentScore) > math.Abs(annotated[j].SentimentScore)
	})

	return annotated
}
