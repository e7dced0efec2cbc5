package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSymbolIndexMention(t *testing.T) {
	assert.Equal(t, "SPY", ExtractSymbol("S&P 500 closes at record high", ""))
	assert.Equal(t, "DIA", ExtractSymbol("Dow Jones slides on rate fears", ""))
	assert.Equal(t, "QQQ", ExtractSymbol("Nasdaq rallies as tech rebounds", ""))
	assert.Equal(t, "IWM", ExtractSymbol("Russell 2000 underperforms again", ""))
	assert.Equal(t, "VIX", ExtractSymbol("Volatility index spikes above 30", ""))
}

func TestExtractSymbolIndexMentionCaseInsensitive(t *testing.T) {
	assert.Equal(t, "SPY", ExtractSymbol("the s&p500 drifts lower", ""))
}

func TestExtractSymbolIndexMentionInSummary(t *testing.T) {
	assert.Equal(t, "QQQ", ExtractSymbol("Markets wrap", "The Nasdaq led gains today"))
}

func TestExtractSymbolIndexBeatsTicker(t *testing.T) {
	// Index phrases take precedence even when a ticker token is present.
	assert.Equal(t, "QQQ", ExtractSymbol("AAPL drags the Nasdaq lower", ""))
}

func TestExtractSymbolTickerToken(t *testing.T) {
	assert.Equal(t, "AAPL", ExtractSymbol("AAPL beats earnings expectations", ""))
}

func TestExtractSymbolDollarPrefixTrimmed(t *testing.T) {
	assert.Equal(t, "TSLA", ExtractSymbol("Traders pile into $TSLA calls", ""))
}

func TestExtractSymbolTitleBeforeSummary(t *testing.T) {
	assert.Equal(t, "MSFT", ExtractSymbol("MSFT update", "GOOG also moved"))
}

func TestExtractSymbolFallsBackToSummary(t *testing.T) {
	assert.Equal(t, "NVDA", ExtractSymbol("Chipmaker extends winning streak", "NVDA gained 4% after hours"))
}

func TestExtractSymbolStoplistedAcronyms(t *testing.T) {
	assert.Equal(t, "", ExtractSymbol("CEO steps down after FDA warning", ""))
	assert.Equal(t, "", ExtractSymbol("GDP growth slows as CPI stays hot", ""))
}

func TestExtractSymbolNoGuess(t *testing.T) {
	assert.Equal(t, "", ExtractSymbol("Markets drift sideways in quiet session", ""))
	assert.Equal(t, "", ExtractSymbol("", ""))
}

func TestExtractSymbolRejectsLongAndLowercaseTokens(t *testing.T) {
	assert.Equal(t, "", ExtractSymbol("STOCKS advance broadly", ""))
	assert.Equal(t, "", ExtractSymbol("apple gains on upgrade", ""))
}
