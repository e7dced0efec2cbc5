package repository

import (
	"context"

	"golang-news-curator/internal/entity"

	"gorm.io/gorm"
)

// QualityPassHistoryRepository defines the interface for quality pass history data operations.
type QualityPassHistoryRepository interface {
	Create(ctx context.Context, history *entity.QualityPassHistory) error
	FindByID(ctx context.Context, id int64) (*entity.QualityPassHistory, error)
	FindAll(ctx context.Context) ([]entity.QualityPassHistory, error)
	Update(ctx context.Context, history *entity.QualityPassHistory) error
}

// NewQualityPassHistoryRepository creates a new GORM-based quality pass history repository.
func NewQualityPassHistoryRepository(db *gorm.DB) QualityPassHistoryRepository {
	return &qualityPassHistoryRepository{db: db}
}

type qualityPassHistoryRepository struct {
	db *gorm.DB
}

// Create creates a new quality pass history record.
func (r *qualityPassHistoryRepository) Create(ctx context.Context, history *entity.QualityPassHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

// FindByID retrieves a quality pass history record by its ID.
func (r *qualityPassHistoryRepository) FindByID(ctx context.Context, id int64) (*entity.QualityPassHistory, error) {
	var history entity.QualityPassHistory
	if err := r.db.WithContext(ctx).First(&history, id).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

// FindAll retrieves all quality pass history records, newest first.
func (r *qualityPassHistoryRepository) FindAll(ctx context.Context) ([]entity.QualityPassHistory, error) {
	var histories []entity.QualityPassHistory
	if err := r.db.WithContext(ctx).Order("started_at DESC").Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}

// Update updates a quality pass history record.
func (r *qualityPassHistoryRepository) Update(ctx context.Context, history *entity.QualityPassHistory) error {
	return r.db.WithContext(ctx).Save(history).Error
}
