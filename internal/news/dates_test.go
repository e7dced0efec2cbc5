package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDateAt(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty defaults to today", "", "2024-03-15"},
		{"iso passes through", "2024-01-05", "2024-01-05"},
		{"iso with time passes through untouched", "2024-01-05T08:00:00Z", "2024-01-05T08:00:00Z"},
		{"abbreviated month", "Jan 5, 2024", "2024-01-05"},
		{"full month", "January 5, 2024", "2024-01-05"},
		{"day first", "5 Jan 2024", "2024-01-05"},
		{"slash date", "2024/01/05", "2024-01-05"},
		{"days ago", "3 days ago", "2024-03-12"},
		{"single day ago", "1 day ago", "2024-03-14"},
		{"weeks ago", "2 weeks ago", "2024-03-01"},
		{"months ago", "1 month ago", "2024-02-14"},
		{"hours ago stay today", "5 hours ago", "2024-03-15"},
		{"minutes ago stay today", "12 minutes ago", "2024-03-15"},
		{"unparseable defaults to today", "sometime last spring", "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDateAt(tt.input, now))
		})
	}
}

func TestNormalizeDateUsesCurrentDay(t *testing.T) {
	got := NormalizeDate("2 hours ago")
	assert.Equal(t, time.Now().Format("2006-01-02"), got)
}
