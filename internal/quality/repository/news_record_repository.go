package repository

import (
	"context"

	"golang-news-curator/internal/entity"

	"gorm.io/gorm"
)

// NewsRecordRepository audits and repairs market news rows.
type NewsRecordRepository interface {
	FindDeficient(ctx context.Context, limit int) ([]entity.MarketNews, error)
	CountDeficient(ctx context.Context) (int64, error)
	FindReviewQueue(ctx context.Context, limit int) ([]entity.MarketNews, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	UpdateURL(ctx context.Context, id int64, url string) error
	UpdateSummary(ctx context.Context, id int64, summary string) error
	UpdateSymbol(ctx context.Context, id int64, symbol string) error
}

type newsRecordRepository struct {
	db *gorm.DB
}

// NewNewsRecordRepository creates a new repository for news quality operations.
func NewNewsRecordRepository(db *gorm.DB) NewsRecordRepository {
	return &newsRecordRepository{db: db}
}

// FindDeficient returns the newest rows with a missing summary. Rows parked
// under the review sentinel are excluded; they wait for manual resolution.
func (r *newsRecordRepository) FindDeficient(ctx context.Context, limit int) ([]entity.MarketNews, error) {
	var records []entity.MarketNews
	err := r.db.WithContext(ctx).
		Where("summary IS NULL OR summary = ''").
		Where("symbol IS NULL OR symbol <> ?", entity.SymbolReview).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *newsRecordRepository) CountDeficient(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.MarketNews{}).
		Where("summary IS NULL OR summary = ''").
		Where("symbol IS NULL OR symbol <> ?", entity.SymbolReview).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindReviewQueue lists rows parked for manual symbol review, newest first.
func (r *newsRecordRepository) FindReviewQueue(ctx context.Context, limit int) ([]entity.MarketNews, error) {
	var records []entity.MarketNews
	err := r.db.WithContext(ctx).
		Where("symbol = ?", entity.SymbolReview).
		Order("news_date DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *newsRecordRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	return r.db.WithContext(ctx).Model(&entity.MarketNews{}).Where("id = ?", id).Update("title", title).Error
}

func (r *newsRecordRepository) UpdateURL(ctx context.Context, id int64, url string) error {
	return r.db.WithContext(ctx).Model(&entity.MarketNews{}).Where("id = ?", id).Update("url", url).Error
}

func (r *newsRecordRepository) UpdateSummary(ctx context.Context, id int64, summary string) error {
	return r.db.WithContext(ctx).Model(&entity.MarketNews{}).Where("id = ?", id).Update("summary", summary).Error
}

func (r *newsRecordRepository) UpdateSymbol(ctx context.Context, id int64, symbol string) error {
	return r.db.WithContext(ctx).Model(&entity.MarketNews{}).Where("id = ?", id).Update("symbol", symbol).Error
}
