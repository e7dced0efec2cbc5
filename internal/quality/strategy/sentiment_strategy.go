package strategy

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"golang-news-curator/internal/entity"
	"golang-news-curator/internal/quality/config"
	"golang-news-curator/internal/quality/repository"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/utils"
)

// Defaults applied to sentiment rows saved with missing fields.
const (
	defaultSentimentSymbol = "SPY"
	defaultSentimentSource = "InversorIA AI"
)

// SentimentRemediationStrategy repairs market sentiment rows: it generates
// the missing analysis narrative and backfills the remaining required fields
// from the row's overall direction.
type SentimentRemediationStrategy struct {
	cfg           *config.Config
	logger        *logger.Logger
	sentimentRepo repository.SentimentRecordRepository
	aiRepo        repository.AIRepository
}

// NewSentimentRemediationStrategy creates a new instance of SentimentRemediationStrategy.
func NewSentimentRemediationStrategy(cfg *config.Config, logger *logger.Logger, sentimentRepo repository.SentimentRecordRepository, aiRepo repository.AIRepository) *SentimentRemediationStrategy {
	return &SentimentRemediationStrategy{
		cfg:           cfg,
		logger:        logger,
		sentimentRepo: sentimentRepo,
		aiRepo:        aiRepo,
	}
}

// GetTable returns the table this strategy repairs.
func (s *SentimentRemediationStrategy) GetTable() entity.QualityTable {
	return entity.QualityTableSentiment
}

// Execute remediates up to limit deficient sentiment records.
func (s *SentimentRemediationStrategy) Execute(ctx context.Context, limit int) (int, error) {
	records, err := s.sentimentRepo.FindDeficient(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to find deficient sentiment records: %w", err)
	}
	if len(records) == 0 {
		s.logger.Info("No deficient sentiment records found")
		return 0, nil
	}

	processed := 0
	for i := range records {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		repaired, err := s.remediate(ctx, &records[i])
		if err != nil {
			s.logger.Error("Failed to remediate sentiment record", logger.ErrorField(err), logger.Field("id", records[i].ID))
		} else if repaired {
			processed++
		}
		pause(ctx, s.cfg.Quality.PauseBetweenItems)
	}

	s.logger.Info("Sentiment remediation finished",
		logger.IntField("deficient", len(records)),
		logger.IntField("processed", processed))
	return processed, nil
}

// remediate backfills every missing field of one record in a single update.
// A failed analysis generation only skips that field; defaults still apply.
func (s *SentimentRemediationStrategy) remediate(ctx context.Context, record *entity.MarketSentiment) (bool, error) {
	fields := map[string]any{}

	if record.Analysis == "" {
		analysis, err := s.aiRepo.GenerateSentimentAnalysis(ctx, record)
		if err != nil {
			s.logger.Warn("Failed to generate sentiment analysis", logger.ErrorField(err), logger.Field("id", record.ID))
		} else if s.acceptAnalysis(analysis, record.Analysis) {
			fields["analysis"] = analysis
		}
	}
	if record.Symbol == "" {
		fields["symbol"] = defaultSentimentSymbol
	}
	if record.Sentiment == "" {
		fields["sentiment"] = sentimentFromOverall(record.Overall)
	}
	if record.Score == nil {
		fields["score"] = scoreFromOverall(record.Overall)
	}
	if record.Source == "" {
		fields["source"] = defaultSentimentSource
	}
	if record.SentimentDate == nil {
		fields["sentiment_date"] = sentimentDateFor(record)
	}

	if len(fields) == 0 {
		return false, nil
	}
	if err := s.sentimentRepo.UpdateFields(ctx, record.ID, fields); err != nil {
		return false, fmt.Errorf("failed to update sentiment record: %w", err)
	}
	return true, nil
}

func (s *SentimentRemediationStrategy) acceptAnalysis(candidate, previous string) bool {
	if candidate == "" {
		return false
	}
	n := utf8.RuneCountInString(candidate)
	if n < s.cfg.Quality.MinAnalysisLength {
		return false
	}
	return n > utf8.RuneCountInString(previous)
}

func sentimentFromOverall(overall string) string {
	switch overall {
	case entity.OverallBullish:
		return entity.SentimentPositive
	case entity.OverallBearish:
		return entity.SentimentNegative
	default:
		return entity.SentimentNeutral
	}
}

func scoreFromOverall(overall string) float64 {
	switch overall {
	case entity.OverallBullish:
		return 0.75
	case entity.OverallBearish:
		return 0.25
	default:
		return 0.5
	}
}

// sentimentDateFor prefers the row's own snapshot date; rows that never got
// one are stamped with the current time.
func sentimentDateFor(record *entity.MarketSentiment) time.Time {
	if !record.Date.IsZero() {
		return record.Date
	}
	return time.Now()
}
