package repository

import (
	"context"
	"fmt"

	"golang-news-curator/internal/entity"

	"gorm.io/gorm"
)

// deficientSentimentCondition selects rows with any required field missing.
const deficientSentimentCondition = "(analysis IS NULL OR analysis = '') " +
	"OR (symbol IS NULL OR symbol = '') " +
	"OR (sentiment IS NULL OR sentiment = '') " +
	"OR score IS NULL " +
	"OR (source IS NULL OR source = '') " +
	"OR sentiment_date IS NULL"

// SentimentRecordRepository audits and repairs market sentiment rows.
type SentimentRecordRepository interface {
	FindDeficient(ctx context.Context, limit int) ([]entity.MarketSentiment, error)
	CountDeficient(ctx context.Context) (int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
}

type sentimentRecordRepository struct {
	db             *gorm.DB
	allowedColumns map[string]struct{}
}

// NewSentimentRecordRepository creates a new repository for sentiment quality
// operations. The sentiment table's columns are inspected once here so that
// UpdateFields can filter requested columns without a query per call.
func NewSentimentRecordRepository(db *gorm.DB) (SentimentRecordRepository, error) {
	columnTypes, err := db.Migrator().ColumnTypes(&entity.MarketSentiment{})
	if err != nil {
		return nil, fmt.Errorf("failed to inspect market_sentiment columns: %w", err)
	}
	allowed := make(map[string]struct{}, len(columnTypes))
	for _, col := range columnTypes {
		allowed[col.Name()] = struct{}{}
	}
	return &sentimentRecordRepository{db: db, allowedColumns: allowed}, nil
}

func (r *sentimentRecordRepository) FindDeficient(ctx context.Context, limit int) ([]entity.MarketSentiment, error) {
	var records []entity.MarketSentiment
	err := r.db.WithContext(ctx).
		Where(deficientSentimentCondition).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sentimentRecordRepository) CountDeficient(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.MarketSentiment{}).
		Where(deficientSentimentCondition).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateFields applies a dynamic multi-column update. Columns not present on
// the table are dropped; an update with no remaining columns is an error.
func (r *sentimentRecordRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	updates := make(map[string]any, len(fields))
	for column, value := range fields {
		if _, ok := r.allowedColumns[column]; ok {
			updates[column] = value
		}
	}
	if len(updates) == 0 {
		return fmt.Errorf("no valid columns to update for sentiment record %d", id)
	}
	return r.db.WithContext(ctx).Model(&entity.MarketSentiment{}).Where("id = ?", id).Updates(updates).Error
}
