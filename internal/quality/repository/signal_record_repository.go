package repository

import (
	"context"
	"strings"

	"golang-news-curator/internal/entity"

	"gorm.io/gorm"
)

// signalErrorSentinels mark expert analyses that captured an upstream error
// message instead of real content. Such rows are treated as empty.
var signalErrorSentinels = []string{"Error", "error", "st.session_state", "AttributeError", "Exception"}

// HasAnalysisErrorSentinel reports whether an expert analysis is an error
// artifact rather than generated content.
func HasAnalysisErrorSentinel(analysis string) bool {
	for _, sentinel := range signalErrorSentinels {
		if strings.Contains(analysis, sentinel) {
			return true
		}
	}
	return false
}

func signalDeficientClause() (string, []any) {
	var clause strings.Builder
	clause.WriteString("expert_analysis IS NULL OR expert_analysis = ''")
	args := make([]any, 0, len(signalErrorSentinels))
	for _, sentinel := range signalErrorSentinels {
		clause.WriteString(" OR expert_analysis LIKE ?")
		args = append(args, "%"+sentinel+"%")
	}
	return clause.String(), args
}

// SignalRecordRepository audits and repairs trading signal rows.
type SignalRecordRepository interface {
	FindDeficient(ctx context.Context, limit int) ([]entity.TradingSignal, error)
	CountDeficient(ctx context.Context) (int64, error)
	UpdateExpertAnalysis(ctx context.Context, id int64, analysis string) error
}

type signalRecordRepository struct {
	db *gorm.DB
}

// NewSignalRecordRepository creates a new repository for signal quality operations.
func NewSignalRecordRepository(db *gorm.DB) SignalRecordRepository {
	return &signalRecordRepository{db: db}
}

// FindDeficient returns the newest rows whose expert analysis is missing or
// holds an error sentinel.
func (r *signalRecordRepository) FindDeficient(ctx context.Context, limit int) ([]entity.TradingSignal, error) {
	clause, args := signalDeficientClause()
	var records []entity.TradingSignal
	err := r.db.WithContext(ctx).
		Where(clause, args...).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *signalRecordRepository) CountDeficient(ctx context.Context) (int64, error) {
	clause, args := signalDeficientClause()
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.TradingSignal{}).
		Where(clause, args...).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *signalRecordRepository) UpdateExpertAnalysis(ctx context.Context, id int64, analysis string) error {
	return r.db.WithContext(ctx).Model(&entity.TradingSignal{}).Where("id = ?", id).Update("expert_analysis", analysis).Error
}
