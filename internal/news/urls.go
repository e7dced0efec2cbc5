package news

import (
	"fmt"
	"strings"
)

// FallbackURL synthesizes a deterministic quote-page URL for an item whose
// source omitted one, keyed off the source name. Unknown sources fall back
// to a Google Finance quote lookup.
func FallbackURL(symbol, source string) string {
	s := strings.ToLower(source)
	switch {
	case strings.Contains(s, "yahoo"):
		return fmt.Sprintf("https://finance.yahoo.com/quote/%s", symbol)
	case strings.Contains(s, "google"):
		return fmt.Sprintf("https://www.google.com/finance/quote/%s", symbol)
	case strings.Contains(s, "marketwatch"):
		return fmt.Sprintf("https://www.marketwatch.com/investing/stock/%s", strings.ToLower(symbol))
	case strings.Contains(s, "bloomberg"):
		return fmt.Sprintf("https://www.bloomberg.com/quote/%s", symbol)
	case strings.Contains(s, "cnbc"):
		return fmt.Sprintf("https://www.cnbc.com/quotes/%s", symbol)
	case strings.Contains(s, "reuters"):
		return fmt.Sprintf("https://www.reuters.com/companies/%s", symbol)
	case strings.Contains(s, "investing.com"):
		return fmt.Sprintf("https://www.investing.com/search/?q=%s", symbol)
	case strings.Contains(s, "seeking alpha"):
		return fmt.Sprintf("https://seekingalpha.com/symbol/%s", symbol)
	case strings.Contains(s, "barrons"):
		return fmt.Sprintf("https://www.barrons.com/quote/stock/%s", symbol)
	case strings.Contains(s, "financial times"), strings.Contains(s, "ft.com"):
		return fmt.Sprintf("https://markets.ft.com/data/equities/tearsheet/summary?s=%s", symbol)
	case strings.Contains(s, "wsj"), strings.Contains(s, "wall street journal"):
		return fmt.Sprintf("https://www.wsj.com/market-data/quotes/%s", symbol)
	default:
		return fmt.Sprintf("https://www.google.com/finance/quote/%s", symbol)
	}
}
