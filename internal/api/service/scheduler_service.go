package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"

	"golang-news-curator/internal/api/config"
	"golang-news-curator/internal/api/repository"
	"golang-news-curator/internal/entity"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/utils"
)

// SchedulerService defines the interface for the quality pass scheduler.
type SchedulerService interface {
	Start(ctx context.Context)
	ProcessSchedules(ctx context.Context)
}

// NewSchedulerService creates a new scheduler service.
func NewSchedulerService(cfg *config.Config, scheduleRepo repository.QualityScheduleRepository, historyRepo repository.QualityPassHistoryRepository, publisher StreamPublisher, logger *logger.Logger) SchedulerService {
	return &schedulerService{
		scheduleRepo:    scheduleRepo,
		historyRepo:     historyRepo,
		publisher:       publisher,
		logger:          logger,
		pollingInterval: cfg.Scheduler.PollingInterval,
		cronParser:      cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

type schedulerService struct {
	scheduleRepo    repository.QualityScheduleRepository
	historyRepo     repository.QualityPassHistoryRepository
	publisher       StreamPublisher
	logger          *logger.Logger
	pollingInterval time.Duration
	cronParser      cron.Parser
}

// Start runs the scheduler loop until the context is canceled.
func (s *schedulerService) Start(ctx context.Context) {
	s.logger.Info("Starting quality pass scheduler", logger.Field("polling_interval", s.pollingInterval.String()))
	ticker := time.NewTicker(s.pollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Quality pass scheduler stopped")
			return
		case <-ticker.C:
			s.ProcessSchedules(ctx)
		}
	}
}

// ProcessSchedules publishes a pass for every schedule that is due.
func (s *schedulerService) ProcessSchedules(ctx context.Context) {
	schedules, err := s.scheduleRepo.FindDue(ctx)
	if err != nil {
		s.logger.Error("Failed to find due quality schedules", logger.ErrorField(err))
		return
	}

	for i := range schedules {
		s.publishPass(ctx, &schedules[i])
	}
}

// publishPass records a history row for the schedule, enqueues it and
// advances the schedule to its next execution time.
func (s *schedulerService) publishPass(ctx context.Context, schedule *entity.QualitySchedule) {
	history := &entity.QualityPassHistory{
		ScheduleID:  sql.NullInt64{Int64: schedule.ID, Valid: true},
		TargetTable: schedule.TargetTable,
		ItemLimit:   schedule.ItemLimit,
		Status:      entity.QualityPassStatusRunning,
		StartedAt:   time.Now(),
	}
	if err := s.historyRepo.Create(ctx, history); err != nil {
		s.logger.Error("Failed to create quality pass history", logger.ErrorField(err), logger.Field("schedule_id", schedule.ID))
		return
	}

	payload, err := json.Marshal(history)
	if err != nil {
		s.logger.Error("Failed to marshal quality pass payload", logger.ErrorField(err), logger.Field("history_id", history.ID))
		return
	}

	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Error("Failed to enqueue scheduled quality pass", logger.ErrorField(err), logger.Field("history_id", history.ID))
		history.Status = entity.QualityPassStatusFailed
		history.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
		history.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
		if errInner := s.historyRepo.Update(ctx, history); errInner != nil {
			s.logger.Error("Failed to update quality pass history", logger.ErrorField(errInner), logger.Field("history_id", history.ID))
		}
		return
	}

	s.logger.Info("Scheduled quality pass enqueued",
		logger.Field("schedule_id", schedule.ID),
		logger.Field("history_id", history.ID),
		logger.StringField("table", string(schedule.TargetTable)))

	sched, err := s.cronParser.Parse(schedule.CronExpression)
	if err != nil {
		s.logger.Error("Failed to parse cron expression", logger.ErrorField(err), logger.Field("schedule_id", schedule.ID))
		return
	}

	now := utils.TimeNowMarket()
	schedule.LastExecution = sql.NullTime{Time: now, Valid: true}
	schedule.NextExecution = sql.NullTime{Time: sched.Next(now), Valid: true}
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		s.logger.Error("Failed to update quality schedule", logger.ErrorField(err), logger.Field("schedule_id", schedule.ID))
	}
}
