package news

import "strings"

// indexMentions map market-index phrases to the ETF that tracks them. Checked
// in order so the more specific phrase wins.
var indexMentions = []struct {
	mention string
	symbol  string
}{
	{"s&p 500", "SPY"},
	{"s&p500", "SPY"},
	{"sp500", "SPY"},
	{"dow jones", "DIA"},
	{"djia", "DIA"},
	{"nasdaq 100", "QQQ"},
	{"nasdaq", "QQQ"},
	{"russell 2000", "IWM"},
	{"volatility index", "VIX"},
	{"vix", "VIX"},
}

// symbolStoplist holds short all-caps tokens that look like tickers but are
// common finance acronyms.
var symbolStoplist = map[string]struct{}{
	"AI": {}, "CEO": {}, "CFO": {}, "CTO": {}, "COO": {}, "IPO": {},
	"ETF": {}, "US": {}, "USA": {}, "UK": {}, "EU": {}, "FDA": {},
	"SEC": {}, "GDP": {}, "FED": {}, "NYSE": {}, "OPEC": {}, "EPS": {},
	"FOMC": {}, "IMF": {}, "CPI": {}, "PPI": {}, "PMI": {},
}

// ExtractSymbol guesses the ticker a news record refers to. Index mentions
// resolve to their tracking ETF first; otherwise the first 2-5 letter
// all-caps token outside the stoplist wins, title before summary. An empty
// result means no confident guess was possible.
func ExtractSymbol(title, summary string) string {
	lowered := strings.ToLower(title + " " + summary)
	for _, im := range indexMentions {
		if strings.Contains(lowered, im.mention) {
			return im.symbol
		}
	}
	if tok := symbolToken(title); tok != "" {
		return tok
	}
	return symbolToken(summary)
}

func symbolToken(text string) string {
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,:;!?()[]{}'\"$")
		if len(tok) < 2 || len(tok) > 5 {
			continue
		}
		if _, stopped := symbolStoplist[tok]; stopped {
			continue
		}
		allCaps := true
		for _, r := range tok {
			if r < 'A' || r > 'Z' {
				allCaps = false
				break
			}
		}
		if allCaps {
			return tok
		}
	}
	return ""
}
