package news

import (
	"strings"
	"time"

	"golang-news-curator/pkg/utils"
)

// highRelevanceKeywords flag news that moves prices regardless of whether
// the instrument is named.
var highRelevanceKeywords = []string{
	"earnings", "revenue", "profit", "loss", "guidance", "forecast",
	"upgrade", "downgrade", "rating", "analyst", "merger", "acquisition",
	"dividend", "split", "ceo", "executive", "lawsuit", "investigation",
	"patent", "fda", "approval", "product", "launch", "quarterly", "annual",
	"report", "financial", "results", "performance", "stock", "shares",
	"market", "investor", "trading", "price target", "valuation",
}

// scoringKeywords is the shorter list used for score weighting.
var scoringKeywords = []string{
	"earnings", "revenue", "profit", "loss", "guidance", "forecast",
	"upgrade", "downgrade", "rating", "analyst", "merger", "acquisition",
	"dividend", "split", "ceo", "executive", "lawsuit", "investigation",
	"patent", "fda", "approval", "product", "launch",
}

// financialSources lower the keyword threshold for relevance: dedicated
// finance outlets rarely cover a ticker page with off-topic items.
var financialSources = []string{
	"yahoo finance", "bloomberg", "reuters", "cnbc", "marketwatch",
	"seeking alpha", "barrons", "financial times", "ft.com", "wsj",
	"wall street journal", "investor's business daily", "morningstar",
	"motley fool", "zacks", "investopedia",
}

// credibleSources add a credibility bonus to the relevance score.
var credibleSources = []string{
	"bloomberg", "reuters", "wall street journal", "wsj", "financial times",
	"ft", "cnbc", "marketwatch", "seeking alpha", "yahoo finance", "barrons",
}

// companyStopwords are corporate suffixes ignored when matching company-name
// tokens.
var companyStopwords = []string{
	"inc", "corporation", "corp", "company", "co", "ltd", "limited", "llc",
	"holdings", "group", "the", "and",
}

// containsWholeWord reports whether word appears space-delimited in text.
// Both are expected lowercased.
func containsWholeWord(text, word string) bool {
	return strings.Contains(" "+text+" ", " "+word+" ")
}

func isFinancialSource(source string) bool {
	s := strings.ToLower(source)
	for _, fs := range financialSources {
		if strings.Contains(s, fs) {
			return true
		}
	}
	return false
}

func isCredibleSource(source string) bool {
	s := strings.ToLower(source)
	for _, cs := range credibleSources {
		if strings.Contains(s, cs) {
			return true
		}
	}
	return false
}

// IsRelevant decides whether an item concerns the given instrument. The
// checks run in order and the first hit wins: whole-word symbol, company-name
// token, keyword threshold (1 for financial sources, 2 otherwise), then a
// 7-day recency rescue for financial sources with a single keyword hit.
func IsRelevant(item Item, symbol, companyName string, now time.Time) bool {
	title := strings.ToLower(item.Title)
	summary := strings.ToLower(item.Summary)

	if title == "" && summary == "" {
		return false
	}

	sym := strings.ToLower(symbol)
	if containsWholeWord(title, sym) || containsWholeWord(summary, sym) {
		return true
	}
	if strings.HasPrefix(title, sym) || strings.HasSuffix(title, sym) ||
		strings.HasPrefix(summary, sym) || strings.HasSuffix(summary, sym) {
		return true
	}

	if companyName != "" {
		company := strings.ToLower(companyName)
		if strings.Contains(title, company) || strings.Contains(summary, company) {
			return true
		}
		for _, part := range strings.Fields(company) {
			if len(part) <= 2 {
				continue
			}
			if utils.ContainsString(companyStopwords, part) {
				continue
			}
			if containsWholeWord(title, part) || containsWholeWord(summary, part) {
				return true
			}
		}
	}

	threshold := 2
	if isFinancialSource(item.Source) {
		threshold = 1
	}

	keywordCount := 0
	for _, keyword := range highRelevanceKeywords {
		if strings.Contains(title, keyword) || strings.Contains(summary, keyword) {
			keywordCount++
			if keywordCount >= threshold {
				return true
			}
		}
	}

	// Recency rescues weak keyword matches from financial sources.
	if keywordCount > 0 && keywordCount < threshold && isFinancialSource(item.Source) && item.PublishedDate != "" {
		if dt, err := time.Parse("2006-01-02", NormalizeDate(item.PublishedDate)); err == nil {
			if int(now.Sub(dt).Hours()/24) <= 7 {
				return true
			}
		}
	}

	return false
}

// RelevanceScore weighs how strongly an item concerns the instrument:
// 0.5 baseline, symbol and company-name placement, one keyword bonus per
// field, and a credible-source bonus, clamped to [0,1].
func RelevanceScore(item Item, symbol, companyName string) float64 {
	score := 0.5

	title := strings.ToLower(item.Title)
	summary := strings.ToLower(item.Summary)
	sym := strings.ToLower(symbol)

	if strings.Contains(title, sym) {
		score += 0.3
	} else if strings.Contains(summary, sym) {
		score += 0.1
	}

	if companyName != "" {
		company := strings.ToLower(companyName)
		if strings.Contains(title, company) {
			score += 0.2
		} else if strings.Contains(summary, company) {
			score += 0.1
		}
	}

	for _, keyword := range scoringKeywords {
		if strings.Contains(title, keyword) {
			score += 0.15
			break
		}
	}
	for _, keyword := range scoringKeywords {
		if strings.Contains(summary, keyword) {
			score += 0.05
			break
		}
	}

	if isCredibleSource(item.Source) {
		score += 0.1
	}

	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}
