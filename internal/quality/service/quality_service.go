package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"golang-news-curator/internal/entity"
	"golang-news-curator/internal/quality/config"
	"golang-news-curator/internal/quality/dto"
	"golang-news-curator/internal/quality/repository"
	"golang-news-curator/internal/quality/strategy"
	"golang-news-curator/pkg/common"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/telegram"

	"github.com/redis/go-redis/v9"
)

const defaultPassLimit = 10

// passOrder fixes the table sequence for a full pass.
var passOrder = []entity.QualityTable{
	entity.QualityTableNews,
	entity.QualityTableSentiment,
	entity.QualityTableSignals,
}

// QualityService runs quality passes and consumes pass requests from the
// Redis stream.
type QualityService interface {
	RunPass(ctx context.Context, table entity.QualityTable, limit int, dryRun bool) (*dto.QualityPassResult, error)
	ProcessTask(ctx context.Context)
}

// NewQualityService creates a new QualityService.
func NewQualityService(
	cfg *config.Config,
	redisClient *redis.Client,
	historyRepo repository.QualityPassHistoryRepository,
	newsRepo repository.NewsRecordRepository,
	sentimentRepo repository.SentimentRecordRepository,
	signalRepo repository.SignalRecordRepository,
	telegramNotifier telegram.Notifier,
	log *logger.Logger,
	strategies []strategy.RemediationStrategy,
) QualityService {
	strategyMap := make(map[entity.QualityTable]strategy.RemediationStrategy)
	for _, s := range strategies {
		strategyMap[s.GetTable()] = s
	}

	return &qualityService{
		cfg:              cfg,
		redisClient:      redisClient,
		historyRepo:      historyRepo,
		newsRepo:         newsRepo,
		sentimentRepo:    sentimentRepo,
		signalRepo:       signalRepo,
		telegramNotifier: telegramNotifier,
		logger:           log,
		strategies:       strategyMap,
	}
}

type qualityService struct {
	cfg              *config.Config
	redisClient      *redis.Client
	historyRepo      repository.QualityPassHistoryRepository
	newsRepo         repository.NewsRecordRepository
	sentimentRepo    repository.SentimentRecordRepository
	signalRepo       repository.SignalRecordRepository
	telegramNotifier telegram.Notifier
	logger           *logger.Logger
	strategies       map[entity.QualityTable]strategy.RemediationStrategy
}

// RunPass remediates the requested table (or all of them, news first) and
// reports how many records were repaired per table. A dry run only counts
// the records a real pass would pick up. A strategy failure stops the pass
// but the counts collected so far are still returned.
func (s *qualityService) RunPass(ctx context.Context, table entity.QualityTable, limit int, dryRun bool) (*dto.QualityPassResult, error) {
	if !table.Valid() {
		return nil, fmt.Errorf("unknown quality table: %s", table)
	}
	if limit <= 0 {
		limit = defaultPassLimit
	}

	result := &dto.QualityPassResult{}
	if dryRun {
		if err := s.countDeficient(ctx, table, result); err != nil {
			return result, err
		}
		return result, nil
	}

	for _, tbl := range passOrder {
		if table != entity.QualityTableAll && tbl != table {
			continue
		}
		strat, ok := s.strategies[tbl]
		if !ok {
			return result, fmt.Errorf("no remediation strategy found for table: %s", tbl)
		}
		processed, err := strat.Execute(ctx, limit)
		s.applyCount(result, tbl, processed)
		if err != nil {
			return result, fmt.Errorf("quality pass on %s failed: %w", tbl, err)
		}
	}
	return result, nil
}

func (s *qualityService) applyCount(result *dto.QualityPassResult, table entity.QualityTable, processed int) {
	switch table {
	case entity.QualityTableNews:
		result.NewsProcessed = processed
	case entity.QualityTableSentiment:
		result.SentimentProcessed = processed
	case entity.QualityTableSignals:
		result.SignalsProcessed = processed
	}
}

func (s *qualityService) countDeficient(ctx context.Context, table entity.QualityTable, result *dto.QualityPassResult) error {
	if table == entity.QualityTableAll || table == entity.QualityTableNews {
		count, err := s.newsRepo.CountDeficient(ctx)
		if err != nil {
			return fmt.Errorf("failed to count deficient news records: %w", err)
		}
		result.NewsProcessed = int(count)
	}
	if table == entity.QualityTableAll || table == entity.QualityTableSentiment {
		count, err := s.sentimentRepo.CountDeficient(ctx)
		if err != nil {
			return fmt.Errorf("failed to count deficient sentiment records: %w", err)
		}
		result.SentimentProcessed = int(count)
	}
	if table == entity.QualityTableAll || table == entity.QualityTableSignals {
		count, err := s.signalRepo.CountDeficient(ctx)
		if err != nil {
			return fmt.Errorf("failed to count deficient signal records: %w", err)
		}
		result.SignalsProcessed = int(count)
	}
	return nil
}

// ProcessTask dequeues and executes a single quality pass request.
func (s *qualityService) ProcessTask(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamQualityPassExecution, ">"}, // ">" means only new messages
		Count:    1,
		Block:    2 * time.Second, // Block for 2 seconds to allow graceful shutdown
		NoAck:    true,
	}).Result()

	if err != nil {
		// Context cancellation and empty reads are expected during shutdown
		// or idle periods.
		if err == context.Canceled || err == redis.Nil {
			return
		}
		s.logger.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return
	}

	message := streams[0].Messages[0]

	taskData, ok := message.Values["payload"].(string)
	if !ok {
		s.logger.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", message.ID))
		return
	}

	var history entity.QualityPassHistory
	if err := json.Unmarshal([]byte(taskData), &history); err != nil {
		s.logger.Error("Failed to unmarshal quality pass payload", logger.ErrorField(err), logger.Field("message_id", message.ID))
		return
	}

	s.logger.Info("Processing quality pass",
		logger.Field("history_id", history.ID),
		logger.StringField("table", string(history.TargetTable)))

	s.executeAndUpdate(ctx, &history)
}

func (s *qualityService) executeAndUpdate(ctx context.Context, history *entity.QualityPassHistory) {
	// The timeout bounds the pass itself; the history row is still updated
	// with the outer context when the pass runs out of time.
	passCtx, cancel := context.WithTimeout(ctx, s.cfg.Quality.StreamTaskTimeout)
	result, err := s.RunPass(passCtx, history.TargetTable, history.ItemLimit, history.DryRun)
	cancel()
	if result != nil {
		history.NewsProcessed = result.NewsProcessed
		history.SentimentProcessed = result.SentimentProcessed
		history.SignalsProcessed = result.SignalsProcessed
		if output, marshalErr := json.Marshal(result); marshalErr == nil {
			history.Output = sql.NullString{String: string(output), Valid: true}
		}
	}

	if err != nil {
		s.logger.Error("Quality pass failed", logger.ErrorField(err), logger.Field("history_id", history.ID))
		history.Status = entity.QualityPassStatusFailed
		history.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
	} else {
		s.logger.Info("Quality pass completed", logger.Field("history_id", history.ID), logger.IntField("total", result.Total()))
		history.Status = entity.QualityPassStatusCompleted
	}

	history.CompletedAt.Time = time.Now()
	history.CompletedAt.Valid = true

	if err := s.historyRepo.Update(ctx, history); err != nil {
		s.logger.Error("Failed to update quality pass history", logger.ErrorField(err), logger.Field("history_id", history.ID))
	}

	if s.telegramNotifier != nil {
		if err := s.telegramNotifier.SendMessage(telegram.FormatQualityPassMessage(history)); err != nil {
			s.logger.Error("Failed to send Telegram notification", logger.ErrorField(err))
		}
	}
}
