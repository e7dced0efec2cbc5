package repository

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang-news-curator/internal/entity"
)

// Max completion tokens per generation task.
const (
	summaryMaxTokens     = 250
	translationMaxTokens = 150
	sentimentMaxTokens   = 500
	expertMaxTokens      = 600
)

// Instruction fragments per prompt. A response containing any of them is a
// prompt echo and must be rejected.
var (
	summaryPromptFragments     = []string{"Generate an informative", "The summary must"}
	translationPromptFragments = []string{"Translate this financial news headline", "The translation must"}
	sentimentPromptFragments   = []string{"Generate a detailed market sentiment", "The analysis must", "based on the following data"}
	expertPromptFragments      = []string{"Generate a detailed expert analysis", "The expert analysis must", "based on the following data"}
)

const maxArticleContentChars = 1000

func BuildNewsSummaryPrompt(symbol, title, url, articleContent, targetLanguage string) string {
	var extraBuilder strings.Builder
	if url != "" {
		extraBuilder.WriteString(fmt.Sprintf("URL: %s\n", url))
	}
	if articleContent != "" {
		content := []rune(articleContent)
		if len(content) > maxArticleContentChars {
			content = content[:maxArticleContentChars]
		}
		extraBuilder.WriteString(fmt.Sprintf("Article content: %s\n", string(content)))
	}

	promptTemplate := `Generate an informative and detailed summary in %s (150-200 characters)
for a financial news story about %s with this title: '%s'.
%s
The summary must:
1. Be specific and relevant for investors
2. Include possible implications for the stock price
3. Be written in a professional and objective tone
4. NOT include generic introductory or closing phrases
5. Go straight to the main point of the story`

	return fmt.Sprintf(promptTemplate, targetLanguage, symbol, title, extraBuilder.String())
}

func BuildTitleTranslationPrompt(title, targetLanguage string) string {
	return fmt.Sprintf(`Translate this financial news headline into %s in a professional and concise way:
'%s'

The translation must:
1. Keep the original meaning
2. Use correct financial terminology in %s
3. Be clear and direct
4. NOT significantly exceed the original length`, targetLanguage, title, targetLanguage)
}

func BuildSentimentAnalysisPrompt(sentiment *entity.MarketSentiment, targetLanguage string) string {
	overall := sentiment.Overall
	if overall == "" {
		overall = entity.OverallNeutral
	}

	return fmt.Sprintf(`Generate a detailed market sentiment analysis based on the following data:

- Overall sentiment: %s
- VIX (volatility index): %s
- S&P500 trend: %s
- Technical indicators: %s

The analysis must:
1. Explain the implications of these data points for investors
2. Include an assessment of risks and opportunities
3. Provide context on the current market situation
4. Be written in professional and objective %s
5. Be between 150-300 words
6. NOT include generic introductory or closing phrases`,
		overall,
		valueOrNA(sentiment.VIX),
		valueOrNA(sentiment.SP500Trend),
		valueOrNA(sentiment.TechnicalIndicators),
		targetLanguage,
	)
}

func BuildExpertAnalysisPrompt(signal *entity.TradingSignal, targetLanguage string) string {
	// Indicators is a free-form JSON snapshot; missing keys render as N/A.
	var indicators map[string]any
	if len(signal.Indicators) > 0 {
		_ = json.Unmarshal(signal.Indicators, &indicators)
	}

	return fmt.Sprintf(`Generate a detailed expert analysis for the %s trading signal based on the following data:

- Symbol: %s
- Price: %.2f
- Direction: %s
- Confidence level: %s
- Timeframe: %s
- Strategy: %s
- Support: %s
- Resistance: %s
- RSI: %s
- Trend: %s
- Trend strength: %s
- Volatility: %s
- Sentiment: %s
- Sentiment score: %s
- Latest news: %s

Available technical analysis: %s

The expert analysis must:
1. Start with a general assessment of the asset and its current market position
2. Analyze the most relevant technical and fundamental indicators
3. Assess the macroeconomic and sector context
4. Provide a clear justification for the signal direction (%s)
5. Identify the main catalysts that could affect the price
6. Include risk management considerations
7. Be written in professional and objective %s
8. Have between 200-300 words
9. Structure the analysis with clear headings (GENERAL ASSESSMENT, TECHNICAL ANALYSIS, CATALYSTS, RECOMMENDATION)
10. NOT include generic introductory or closing phrases`,
		signal.Symbol,
		valueOrNA(signal.Symbol),
		signal.Price,
		valueOrNA(signal.Direction),
		valueOrNA(signal.Confidence),
		valueOrNA(signal.Timeframe),
		valueOrNA(signal.Strategy),
		indicatorValue(indicators, "support_level"),
		indicatorValue(indicators, "resistance_level"),
		indicatorValue(indicators, "rsi"),
		indicatorValue(indicators, "trend"),
		indicatorValue(indicators, "trend_strength"),
		indicatorValue(indicators, "volatility"),
		indicatorValue(indicators, "sentiment"),
		indicatorValue(indicators, "sentiment_score"),
		indicatorValue(indicators, "latest_news"),
		valueOrNA(signal.Analysis),
		valueOrNA(signal.Direction),
		targetLanguage,
	)
}

func valueOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func indicatorValue(indicators map[string]any, key string) string {
	v, ok := indicators[key]
	if !ok || v == nil {
		return "N/A"
	}
	switch val := v.(type) {
	case string:
		return valueOrNA(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
