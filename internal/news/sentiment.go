package news

import (
	"fmt"
	"strings"

	"golang-news-curator/internal/entity"
)

var positiveWords = []string{
	"up", "rise", "gain", "profit", "growth", "positive", "beat", "exceed",
	"outperform", "upgrade", "buy", "strong", "success", "improve", "higher",
	"bullish", "opportunity", "innovation", "launch", "approval",
	"partnership", "collaboration", "dividend", "increase",
}

var negativeWords = []string{
	"down", "fall", "drop", "loss", "decline", "negative", "miss", "below",
	"underperform", "downgrade", "sell", "weak", "failure", "worsen", "lower",
	"bearish", "risk", "threat", "lawsuit", "investigation", "recall",
	"delay", "cut", "decrease", "layoff", "restructuring",
}

// SentimentScore returns a lexicon polarity in [-1, 1]. Each word counts at
// most once whether it appears in the title or the summary; zero hits on
// both lists yields 0.
func SentimentScore(item Item) float64 {
	title := strings.ToLower(item.Title)
	summary := strings.ToLower(item.Summary)

	positives := 0
	for _, word := range positiveWords {
		if containsWholeWord(title, word) || containsWholeWord(summary, word) {
			positives++
		}
	}

	negatives := 0
	for _, word := range negativeWords {
		if containsWholeWord(title, word) || containsWholeWord(summary, word) {
			negatives++
		}
	}

	total := positives + negatives
	if total == 0 {
		return 0
	}
	return float64(positives-negatives) / float64(total)
}

// DeriveRecommendation maps a sentiment score onto a trading stance with a
// human-readable rationale. Thresholds: |score| >= 0.7 is a strong signal,
// >= 0.3 a moderate one, anything closer to zero is neutral.
func DeriveRecommendation(score float64, source, title string) Recommendation {
	switch {
	case score >= 0.7:
		return Recommendation{
			Direction:   "strong buy",
			Confidence:  entity.ConfidenceHigh,
			OptionsBias: entity.DirectionCall,
			Rationale:   fmt.Sprintf("Very positive news from %s: '%s'. Sentiment is strongly bullish (score: %.2f).", source, title, score),
			Score:       score,
		}
	case score >= 0.3:
		return Recommendation{
			Direction:   "buy",
			Confidence:  entity.ConfidenceMedium,
			OptionsBias: entity.DirectionCall,
			Rationale:   fmt.Sprintf("Positive news from %s: '%s'. Sentiment is moderately bullish (score: %.2f).", source, title, score),
			Score:       score,
		}
	case score <= -0.7:
		return Recommendation{
			Direction:   "strong sell",
			Confidence:  entity.ConfidenceHigh,
			OptionsBias: entity.DirectionPut,
			Rationale:   fmt.Sprintf("Very negative news from %s: '%s'. Sentiment is strongly bearish (score: %.2f).", source, title, score),
			Score:       score,
		}
	case score <= -0.3:
		return Recommendation{
			Direction:   "sell",
			Confidence:  entity.ConfidenceMedium,
			OptionsBias: entity.DirectionPut,
			Rationale:   fmt.Sprintf("Negative news from %s: '%s'. Sentiment is moderately bearish (score: %.2f).", source, title, score),
			Score:       score,
		}
	default:
		return Recommendation{
			Direction:   "neutral",
			Confidence:  entity.ConfidenceLow,
			OptionsBias: entity.DirectionNeutral,
			Rationale:   fmt.Sprintf("News from %s: '%s'. Sentiment is neutral (score: %.2f).", source, title, score),
			Score:       score,
		}
	}
}
