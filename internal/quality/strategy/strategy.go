package strategy

import (
	"context"
	"time"

	"golang-news-curator/internal/entity"
)

// RemediationStrategy repairs deficient rows of one quality table.
type RemediationStrategy interface {
	// Execute remediates up to limit records and returns how many were repaired.
	Execute(ctx context.Context, limit int) (int, error)
	// GetTable returns the table this strategy is responsible for.
	GetTable() entity.QualityTable
}

// pause sleeps between records so LLM and source traffic stays flat. Returns
// early when the context is canceled.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
