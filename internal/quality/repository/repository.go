package repository

import (
	"context"

	"golang-news-curator/internal/entity"
)

// AIRepository generates remediation content through an LLM backend.
// Implementations clean responses and reject prompt echoes before returning.
type AIRepository interface {
	GenerateNewsSummary(ctx context.Context, symbol, title, url, articleContent string) (string, error)
	TranslateTitle(ctx context.Context, title string) (string, error)
	GenerateSentimentAnalysis(ctx context.Context, sentiment *entity.MarketSentiment) (string, error)
	GenerateExpertAnalysis(ctx context.Context, signal *entity.TradingSignal) (string, error)
}
