package repository

import (
	"context"

	"golang-news-curator/internal/entity"
	"golang-news-curator/pkg/utils"

	"gorm.io/gorm"
)

// QualityScheduleRepository defines the interface for quality schedule data operations.
type QualityScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.QualitySchedule) error
	FindByID(ctx context.Context, id int64) (*entity.QualitySchedule, error)
	FindAll(ctx context.Context) ([]entity.QualitySchedule, error)
	Update(ctx context.Context, schedule *entity.QualitySchedule) error
	Delete(ctx context.Context, id int64) error
	FindDue(ctx context.Context) ([]entity.QualitySchedule, error)
}

// NewQualityScheduleRepository creates a new GORM-based quality schedule repository.
func NewQualityScheduleRepository(db *gorm.DB) QualityScheduleRepository {
	return &qualityScheduleRepository{db: db}
}

type qualityScheduleRepository struct {
	db *gorm.DB
}

// Create creates a new quality schedule.
func (r *qualityScheduleRepository) Create(ctx context.Context, schedule *entity.QualitySchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

// FindByID retrieves a quality schedule by its ID.
func (r *qualityScheduleRepository) FindByID(ctx context.Context, id int64) (*entity.QualitySchedule, error) {
	var schedule entity.QualitySchedule
	if err := r.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// FindAll retrieves all quality schedules.
func (r *qualityScheduleRepository) FindAll(ctx context.Context) ([]entity.QualitySchedule, error) {
	var schedules []entity.QualitySchedule
	if err := r.db.WithContext(ctx).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// Update updates a quality schedule.
func (r *qualityScheduleRepository) Update(ctx context.Context, schedule *entity.QualitySchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

// Delete removes a quality schedule by its ID.
func (r *qualityScheduleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.QualitySchedule{}, id).Error
}

// FindDue finds all active schedules whose next execution is unset or in the past.
func (r *qualityScheduleRepository) FindDue(ctx context.Context) ([]entity.QualitySchedule, error) {
	var schedules []entity.QualitySchedule
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND (next_execution IS NULL OR next_execution <= ?)", true, utils.TimeNowMarket()).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
