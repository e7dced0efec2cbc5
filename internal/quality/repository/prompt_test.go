package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"golang-news-curator/internal/entity"

	"gorm.io/datatypes"
)

func TestBuildNewsSummaryPromptIncludesCoreFields(t *testing.T) {
	prompt := BuildNewsSummaryPrompt("AAPL", "Apple beats estimates", "https://example.com/a", "", "Spanish")

	assert.Contains(t, prompt, "AAPL")
	assert.Contains(t, prompt, "'Apple beats estimates'")
	assert.Contains(t, prompt, "URL: https://example.com/a")
	assert.Contains(t, prompt, "summary in Spanish")
	assert.Contains(t, prompt, "150-200 characters")
}

func TestBuildNewsSummaryPromptOmitsEmptyExtras(t *testing.T) {
	prompt := BuildNewsSummaryPrompt("AAPL", "Apple beats estimates", "", "", "Spanish")

	assert.NotContains(t, prompt, "URL:")
	assert.NotContains(t, prompt, "Article content:")
}

func TestBuildNewsSummaryPromptTruncatesArticleContent(t *testing.T) {
	long := strings.Repeat("x", 5000)
	prompt := BuildNewsSummaryPrompt("AAPL", "t", "", long, "Spanish")

	assert.Contains(t, prompt, "Article content: "+strings.Repeat("x", 1000)+"\n")
	assert.NotContains(t, prompt, strings.Repeat("x", 1001))
}

func TestPromptFragmentsAppearInTheirTemplates(t *testing.T) {
	// The echo guard only works if each fragment literally occurs in the
	// template it protects.
	summary := BuildNewsSummaryPrompt("SPY", "title", "", "", "Spanish")
	for _, f := range summaryPromptFragments {
		assert.Contains(t, summary, f)
	}
	translation := BuildTitleTranslationPrompt("title", "Spanish")
	for _, f := range translationPromptFragments {
		assert.Contains(t, translation, f)
	}
	sentiment := BuildSentimentAnalysisPrompt(&entity.MarketSentiment{}, "Spanish")
	for _, f := range sentimentPromptFragments {
		assert.Contains(t, sentiment, f)
	}
	expert := BuildExpertAnalysisPrompt(&entity.TradingSignal{}, "Spanish")
	for _, f := range expertPromptFragments {
		assert.Contains(t, expert, f)
	}
}

func TestBuildTitleTranslationPromptTargetsLanguage(t *testing.T) {
	prompt := BuildTitleTranslationPrompt("Fed holds rates steady", "Spanish")

	assert.Contains(t, prompt, "into Spanish")
	assert.Contains(t, prompt, "'Fed holds rates steady'")
	assert.Contains(t, prompt, "financial terminology in Spanish")
}

func TestBuildSentimentAnalysisPromptDefaults(t *testing.T) {
	prompt := BuildSentimentAnalysisPrompt(&entity.MarketSentiment{}, "Spanish")

	assert.Contains(t, prompt, "Overall sentiment: Neutral")
	assert.Contains(t, prompt, "VIX (volatility index): N/A")
	assert.Contains(t, prompt, "S&P500 trend: N/A")
	assert.Contains(t, prompt, "Technical indicators: N/A")
}

func TestBuildSentimentAnalysisPromptUsesFields(t *testing.T) {
	s := &entity.MarketSentiment{
		Overall:             entity.OverallBullish,
		VIX:                 "14.2",
		SP500Trend:          "upward",
		TechnicalIndicators: "RSI 62, MACD positive",
	}
	prompt := BuildSentimentAnalysisPrompt(s, "Spanish")

	assert.Contains(t, prompt, "Overall sentiment: Bullish")
	assert.Contains(t, prompt, "VIX (volatility index): 14.2")
	assert.Contains(t, prompt, "S&P500 trend: upward")
	assert.Contains(t, prompt, "Technical indicators: RSI 62, MACD positive")
	assert.Contains(t, prompt, "150-300 words")
}

func TestBuildExpertAnalysisPromptRendersIndicators(t *testing.T) {
	sig := &entity.TradingSignal{
		Symbol:     "AAPL",
		Direction:  entity.DirectionCall,
		Price:      187.5,
		Confidence: entity.ConfidenceHigh,
		Timeframe:  "1d",
		Strategy:   "breakout",
		Indicators: datatypes.JSON(`{"rsi": 61.5, "trend": "up", "support_level": 180}`),
		Analysis:   "Momentum building above the 50-day average.",
	}
	prompt := BuildExpertAnalysisPrompt(sig, "Spanish")

	assert.Contains(t, prompt, "Symbol: AAPL")
	assert.Contains(t, prompt, "Price: 187.50")
	assert.Contains(t, prompt, "Confidence level: High")
	assert.Contains(t, prompt, "RSI: 61.5")
	assert.Contains(t, prompt, "Trend: up")
	assert.Contains(t, prompt, "Support: 180")
	assert.Contains(t, prompt, "Volatility: N/A")
	assert.Contains(t, prompt, "signal direction (CALL)")
	assert.Contains(t, prompt, "Available technical analysis: Momentum building above the 50-day average.")
	assert.Contains(t, prompt, "GENERAL ASSESSMENT, TECHNICAL ANALYSIS, CATALYSTS, RECOMMENDATION")
}

func TestBuildExpertAnalysisPromptEmptySignal(t *testing.T) {
	prompt := BuildExpertAnalysisPrompt(&entity.TradingSignal{}, "Spanish")

	assert.Contains(t, prompt, "Direction: N/A")
	assert.Contains(t, prompt, "Latest news: N/A")
	assert.Contains(t, prompt, "200-300 words")
}
