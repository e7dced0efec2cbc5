package strategy

import (
	"context"
	"fmt"
	"unicode/utf8"

	"golang-news-curator/internal/entity"
	"golang-news-curator/internal/quality/config"
	"golang-news-curator/internal/quality/repository"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/utils"
)

// SignalRemediationStrategy repairs trading signal rows whose expert
// analysis is missing or captured an upstream error message.
type SignalRemediationStrategy struct {
	cfg        *config.Config
	logger     *logger.Logger
	signalRepo repository.SignalRecordRepository
	aiRepo     repository.AIRepository
}

// NewSignalRemediationStrategy creates a new instance of SignalRemediationStrategy.
func NewSignalRemediationStrategy(cfg *config.Config, logger *logger.Logger, signalRepo repository.SignalRecordRepository, aiRepo repository.AIRepository) *SignalRemediationStrategy {
	return &SignalRemediationStrategy{
		cfg:        cfg,
		logger:     logger,
		signalRepo: signalRepo,
		aiRepo:     aiRepo,
	}
}

// GetTable returns the table this strategy repairs.
func (s *SignalRemediationStrategy) GetTable() entity.QualityTable {
	return entity.QualityTableSignals
}

// Execute remediates up to limit deficient signal records.
func (s *SignalRemediationStrategy) Execute(ctx context.Context, limit int) (int, error) {
	records, err := s.signalRepo.FindDeficient(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to find deficient signal records: %w", err)
	}
	if len(records) == 0 {
		s.logger.Info("No deficient signal records found")
		return 0, nil
	}

	processed := 0
	for i := range records {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		repaired, err := s.remediate(ctx, &records[i])
		if err != nil {
			s.logger.Error("Failed to remediate signal record", logger.ErrorField(err), logger.Field("id", records[i].ID))
		} else if repaired {
			processed++
		}
		pause(ctx, s.cfg.Quality.PauseBetweenItems)
	}

	s.logger.Info("Signal remediation finished",
		logger.IntField("deficient", len(records)),
		logger.IntField("processed", processed))
	return processed, nil
}

func (s *SignalRemediationStrategy) remediate(ctx context.Context, record *entity.TradingSignal) (bool, error) {
	// An error artifact carries no content, so it never blocks a replacement.
	previous := record.ExpertAnalysis
	if repository.HasAnalysisErrorSentinel(previous) {
		previous = ""
	}

	analysis, err := s.aiRepo.GenerateExpertAnalysis(ctx, record)
	if err != nil {
		return false, fmt.Errorf("failed to generate expert analysis: %w", err)
	}
	if !s.acceptExpertAnalysis(analysis, previous) {
		s.logger.Warn("Generated expert analysis rejected",
			logger.Field("id", record.ID),
			logger.IntField("length", utf8.RuneCountInString(analysis)))
		return false, nil
	}
	if err := s.signalRepo.UpdateExpertAnalysis(ctx, record.ID, analysis); err != nil {
		return false, fmt.Errorf("failed to update expert analysis: %w", err)
	}
	return true, nil
}

func (s *SignalRemediationStrategy) acceptExpertAnalysis(candidate, previous string) bool {
	if candidate == "" {
		return false
	}
	n := utf8.RuneCountInString(candidate)
	if n < s.cfg.Quality.MinExpertAnalysisLength {
		return false
	}
	return n > utf8.RuneCountInString(previous)
}
