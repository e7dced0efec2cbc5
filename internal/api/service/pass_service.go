package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-news-curator/internal/api/config"
	"golang-news-curator/internal/api/dto"
	"golang-news-curator/internal/api/repository"
	"golang-news-curator/internal/entity"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/utils"
)

// PassService defines the interface for triggering and inspecting quality passes.
type PassService interface {
	// TriggerPass enqueues a quality pass. The bool reports whether the pass
	// finished within the synchronous wait window.
	TriggerPass(ctx context.Context, req *dto.TriggerPassRequest) (*dto.PassHistoryResponse, bool, error)
	GetPassByID(ctx context.Context, id int64) (*dto.PassHistoryResponse, error)
	GetAllPasses(ctx context.Context) ([]*dto.PassHistoryResponse, error)
}

// NewPassService creates a new pass service.
func NewPassService(cfg *config.Config, historyRepo repository.QualityPassHistoryRepository, publisher StreamPublisher, logger *logger.Logger) PassService {
	return &passService{
		cfg:         cfg,
		historyRepo: historyRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

type passService struct {
	cfg         *config.Config
	historyRepo repository.QualityPassHistoryRepository
	publisher   StreamPublisher
	logger      *logger.Logger
}

// TriggerPass records a running history row and publishes it for the quality
// service. With wait set it polls the row until the pass finishes or the
// wait window closes; a timed-out wait is not an error, the pass keeps
// running in the background.
func (s *passService) TriggerPass(ctx context.Context, req *dto.TriggerPassRequest) (*dto.PassHistoryResponse, bool, error) {
	table := entity.QualityTable(req.Table)
	if table == "" {
		table = entity.QualityTableAll
	}
	if !table.Valid() {
		return nil, false, fmt.Errorf("%w: unknown quality table %q", ErrInvalidRequest, req.Table)
	}
	if req.Limit < 0 {
		return nil, false, fmt.Errorf("%w: limit must not be negative", ErrInvalidRequest)
	}

	history := &entity.QualityPassHistory{
		TargetTable: table,
		ItemLimit:   req.Limit,
		DryRun:      req.DryRun,
		Status:      entity.QualityPassStatusRunning,
		StartedAt:   time.Now(),
	}
	if err := s.historyRepo.Create(ctx, history); err != nil {
		s.logger.Error("Failed to create quality pass history", logger.ErrorField(err))
		return nil, false, err
	}

	payload, err := json.Marshal(history)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal quality pass payload: %w", err)
	}

	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Error("Failed to enqueue quality pass", logger.ErrorField(err), logger.Field("history_id", history.ID))
		history.Status = entity.QualityPassStatusFailed
		history.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
		history.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
		if errInner := s.historyRepo.Update(ctx, history); errInner != nil {
			s.logger.Error("Failed to update quality pass history", logger.ErrorField(errInner), logger.Field("history_id", history.ID))
		}
		return nil, false, fmt.Errorf("failed to enqueue quality pass: %w", err)
	}

	s.logger.Info("Quality pass enqueued",
		logger.Field("history_id", history.ID),
		logger.StringField("table", string(table)))

	if !req.Wait {
		return s.mapToPassResponse(history), false, nil
	}

	final := history
	pollErr := utils.Poll(ctx, s.cfg.Pass.WaitTimeout, s.cfg.Pass.PollInterval, func(ctx context.Context) (bool, error) {
		current, err := s.historyRepo.FindByID(ctx, history.ID)
		if err != nil {
			return false, err
		}
		final = current
		return current.Status != entity.QualityPassStatusRunning, nil
	})
	if pollErr != nil {
		if errors.Is(pollErr, utils.ErrPollTimeout) {
			s.logger.Info("Quality pass still running after wait window", logger.Field("history_id", history.ID))
			return s.mapToPassResponse(final), false, nil
		}
		return nil, false, pollErr
	}
	return s.mapToPassResponse(final), true, nil
}

// GetPassByID retrieves a quality pass history record by its ID.
func (s *passService) GetPassByID(ctx context.Context, id int64) (*dto.PassHistoryResponse, error) {
	history, err := s.historyRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to find quality pass history", logger.ErrorField(err), logger.Field("history_id", id))
		return nil, err
	}
	return s.mapToPassResponse(history), nil
}

// GetAllPasses retrieves all quality pass history records.
func (s *passService) GetAllPasses(ctx context.Context) ([]*dto.PassHistoryResponse, error) {
	histories, err := s.historyRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get quality pass histories", logger.ErrorField(err))
		return nil, err
	}

	var responses []*dto.PassHistoryResponse
	for _, history := range histories {
		responses = append(responses, s.mapToPassResponse(&history))
	}

	return responses, nil
}

// mapToPassResponse maps an entity.QualityPassHistory to a dto.PassHistoryResponse.
func (s *passService) mapToPassResponse(history *entity.QualityPassHistory) *dto.PassHistoryResponse {
	resp := &dto.PassHistoryResponse{
		ID:                 history.ID,
		TargetTable:        string(history.TargetTable),
		ItemLimit:          history.ItemLimit,
		DryRun:             history.DryRun,
		Status:             history.Status,
		NewsProcessed:      history.NewsProcessed,
		SentimentProcessed: history.SentimentProcessed,
		SignalsProcessed:   history.SignalsProcessed,
		Output:             history.Output.String,
		ErrorMessage:       history.ErrorMessage.String,
		StartedAt:          history.StartedAt,
	}
	if history.ScheduleID.Valid {
		scheduleID := history.ScheduleID.Int64
		resp.ScheduleID = &scheduleID
	}
	if history.CompletedAt.Valid {
		completedAt := history.CompletedAt.Time
		resp.CompletedAt = &completedAt
		resp.Duration = completedAt.Sub(history.StartedAt).Milliseconds()
	}
	return resp
}
