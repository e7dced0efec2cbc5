package news

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang-news-curator/internal/entity"
)

func TestSentimentScorePositive(t *testing.T) {
	item := Item{Title: "Stock surges on strong profit growth"}
	assert.InDelta(t, 1.0, SentimentScore(item), 1e-9)
}

func TestSentimentScoreNegative(t *testing.T) {
	item := Item{Title: "Company faces lawsuit and investigation over layoff plans"}
	assert.InDelta(t, -1.0, SentimentScore(item), 1e-9)
}

func TestSentimentScoreMixed(t *testing.T) {
	item := Item{Title: "Shares rise after earlier drop"}
	assert.Zero(t, SentimentScore(item))
}

func TestSentimentScoreNoHits(t *testing.T) {
	item := Item{Title: "Quiet day across global exchanges"}
	assert.Zero(t, SentimentScore(item))
}

func TestSentimentScoreWholeWordsOnly(t *testing.T) {
	// "upcoming" must not count as "up".
	item := Item{Title: "upcoming events for shareholders"}
	assert.Zero(t, SentimentScore(item))
}

func TestSentimentScoreCountsEachWordOnce(t *testing.T) {
	// "buy" twice is one positive hit, balanced by one negative hit.
	item := Item{Title: "buy signals say buy but funds sell"}
	assert.Zero(t, SentimentScore(item))
}

func TestSentimentScoreSpansTitleAndSummary(t *testing.T) {
	item := Item{Title: "Results due this week", Summary: "analysts expect higher revenue and strong growth"}
	assert.InDelta(t, 1.0, SentimentScore(item), 1e-9)
}

func TestDeriveRecommendationThresholds(t *testing.T) {
	tests := []struct {
		name        string
		score       float64
		direction   string
		confidence  string
		optionsBias string
	}{
		{"strongly bullish", 0.8, "strong buy", entity.ConfidenceHigh, entity.DirectionCall},
		{"strong buy boundary", 0.7, "strong buy", entity.ConfidenceHigh, entity.DirectionCall},
		{"moderately bullish", 0.5, "buy", entity.ConfidenceMedium, entity.DirectionCall},
		{"buy boundary", 0.3, "buy", entity.ConfidenceMedium, entity.DirectionCall},
		{"neutral positive", 0.1, "neutral", entity.ConfidenceLow, entity.DirectionNeutral},
		{"neutral negative", -0.1, "neutral", entity.ConfidenceLow, entity.DirectionNeutral},
		{"sell boundary", -0.3, "sell", entity.ConfidenceMedium, entity.DirectionPut},
		{"moderately bearish", -0.5, "sell", entity.ConfidenceMedium, entity.DirectionPut},
		{"strong sell boundary", -0.7, "strong sell", entity.ConfidenceHigh, entity.DirectionPut},
		{"strongly bearish", -0.9, "strong sell", entity.ConfidenceHigh, entity.DirectionPut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := DeriveRecommendation(tt.score, "Bloomberg", "Some headline")
			assert.Equal(t, tt.direction, rec.Direction)
			assert.Equal(t, tt.confidence, rec.Confidence)
			assert.Equal(t, tt.optionsBias, rec.OptionsBias)
			assert.Equal(t, tt.score, rec.Score)
		})
	}
}

func TestDeriveRecommendationRationale(t *testing.T) {
	rec := DeriveRecommendation(0.8, "Bloomberg", "AAPL beats estimates")
	assert.Equal(t, "Very positive news from Bloomberg: 'AAPL beats estimates'. Sentiment is strongly bullish (score: 0.80).", rec.Rationale)

	rec = DeriveRecommendation(0, "Reuters", "Quiet session")
	assert.Equal(t, "News from Reuters: 'Quiet session'. Sentiment is neutral (score: 0.00).", rec.Rationale)
}
