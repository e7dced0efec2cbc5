package repository

import (
	"context"

	"golang-news-curator/internal/entity"

	"gorm.io/gorm"
)

// QualityPassHistoryRepository defines the interface for quality pass history data operations.
type QualityPassHistoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.QualityPassHistory, error)
	Update(ctx context.Context, history *entity.QualityPassHistory) error
}

// NewQualityPassHistoryRepository creates a new GORM-based quality pass history repository.
func NewQualityPassHistoryRepository(db *gorm.DB) QualityPassHistoryRepository {
	return &qualityPassHistoryRepository{db: db}
}

type qualityPassHistoryRepository struct {
	db *gorm.DB
}

// FindByID retrieves a quality pass history by its ID.
func (r *qualityPassHistoryRepository) FindByID(ctx context.Context, id int64) (*entity.QualityPassHistory, error) {
	var history entity.QualityPassHistory
	if err := r.db.WithContext(ctx).First(&history, id).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

// Update updates an existing quality pass history record.
func (r *qualityPassHistoryRepository) Update(ctx context.Context, history *entity.QualityPassHistory) error {
	return r.db.WithContext(ctx).Save(history).Error
}
