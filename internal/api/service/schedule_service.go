package service

import (
	"context"
	"fmt"

	"golang-news-curator/internal/api/dto"
	"golang-news-curator/internal/api/repository"
	"golang-news-curator/internal/entity"
	"golang-news-curator/pkg/logger"

	"github.com/robfig/cron/v3"
)

// ScheduleService defines the interface for managing quality schedules.
type ScheduleService interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetScheduleByID(ctx context.Context, id int64) (*dto.ScheduleResponse, error)
	GetAllSchedules(ctx context.Context) ([]*dto.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(scheduleRepo repository.QualityScheduleRepository, logger *logger.Logger) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		logger:       logger,
		cronParser:   cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

type scheduleService struct {
	scheduleRepo repository.QualityScheduleRepository
	logger       *logger.Logger
	cronParser   cron.Parser
}

// CreateSchedule handles the business logic for creating a new schedule.
func (s *scheduleService) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	table, err := s.validate(req.TargetTable, req.CronExpression)
	if err != nil {
		return nil, err
	}

	schedule := &entity.QualitySchedule{
		TargetTable:    table,
		CronExpression: req.CronExpression,
		ItemLimit:      req.ItemLimit,
		IsActive:       req.IsActive,
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		s.logger.Error("Failed to create schedule", logger.ErrorField(err))
		return nil, err
	}

	s.logger.Info("Schedule created successfully", logger.Field("schedule_id", schedule.ID))
	return s.mapToScheduleResponse(schedule), nil
}

// GetScheduleByID retrieves a schedule by its ID.
func (s *scheduleService) GetScheduleByID(ctx context.Context, id int64) (*dto.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to find schedule", logger.ErrorField(err), logger.Field("schedule_id", id))
		return nil, err
	}
	return s.mapToScheduleResponse(schedule), nil
}

// GetAllSchedules retrieves all schedules.
func (s *scheduleService) GetAllSchedules(ctx context.Context) ([]*dto.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all schedules", logger.ErrorField(err))
		return nil, err
	}

	var scheduleResponses []*dto.ScheduleResponse
	for _, schedule := range schedules {
		scheduleResponses = append(scheduleResponses, s.mapToScheduleResponse(&schedule))
	}

	return scheduleResponses, nil
}

// UpdateSchedule handles the business logic for updating an existing schedule.
// Changing the cron expression clears the next execution, so the new rhythm
// takes effect on the scheduler's next poll.
func (s *scheduleService) UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	table, err := s.validate(req.TargetTable, req.CronExpression)
	if err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to find schedule for update", logger.ErrorField(err), logger.Field("schedule_id", id))
		return nil, err
	}

	if schedule.CronExpression != req.CronExpression {
		schedule.NextExecution.Valid = false
	}
	schedule.TargetTable = table
	schedule.CronExpression = req.CronExpression
	schedule.ItemLimit = req.ItemLimit
	schedule.IsActive = req.IsActive

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		s.logger.Error("Failed to update schedule", logger.ErrorField(err), logger.Field("schedule_id", id))
		return nil, err
	}

	s.logger.Info("Schedule updated successfully", logger.Field("schedule_id", id))
	return s.mapToScheduleResponse(schedule), nil
}

// DeleteSchedule deletes a schedule by its ID.
func (s *scheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	err := s.scheduleRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete schedule", logger.ErrorField(err), logger.Field("schedule_id", id))
		return err
	}
	s.logger.Info("Schedule deleted successfully", logger.Field("schedule_id", id))
	return nil
}

func (s *scheduleService) validate(targetTable, cronExpression string) (entity.QualityTable, error) {
	table := entity.QualityTable(targetTable)
	if table == "" {
		table = entity.QualityTableAll
	}
	if !table.Valid() {
		return "", fmt.Errorf("%w: unknown quality table %q", ErrInvalidRequest, targetTable)
	}
	if _, err := s.cronParser.Parse(cronExpression); err != nil {
		return "", fmt.Errorf("%w: invalid cron expression %q: %v", ErrInvalidRequest, cronExpression, err)
	}
	return table, nil
}

// mapToScheduleResponse maps an entity.QualitySchedule to a dto.ScheduleResponse.
func (s *scheduleService) mapToScheduleResponse(schedule *entity.QualitySchedule) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:             schedule.ID,
		TargetTable:    string(schedule.TargetTable),
		CronExpression: schedule.CronExpression,
		ItemLimit:      schedule.ItemLimit,
		IsActive:       schedule.IsActive,
		NextExecution:  schedule.NextExecution,
		LastExecution:  schedule.LastExecution,
		CreatedAt:      schedule.CreatedAt,
		UpdatedAt:      schedule.UpdatedAt,
	}
}
