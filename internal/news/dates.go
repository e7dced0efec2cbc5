package news

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	relativePattern = regexp.MustCompile(`(\d+)\s+(second|minute|hour|day|week|month|year)s?\s+ago`)
)

// absoluteDateLayouts are the free-text date forms the sources emit.
var absoluteDateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"01-02-2006",
}

// NormalizeDate converts a free-text or relative date to ISO YYYY-MM-DD.
// ISO input passes through; unparseable input resolves to today rather than
// failing the item.
func NormalizeDate(dateStr string) string {
	return normalizeDateAt(dateStr, time.Now())
}

func normalizeDateAt(dateStr string, now time.Time) string {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return now.Format("2006-01-02")
	}

	if isoDatePattern.MatchString(dateStr) {
		return dateStr
	}

	for _, layout := range absoluteDateLayouts {
		if dt, err := time.Parse(layout, dateStr); err == nil {
			return dt.Format("2006-01-02")
		}
	}

	lower := strings.ToLower(dateStr)
	if strings.Contains(lower, "ago") {
		if m := relativePattern.FindStringSubmatch(lower); m != nil {
			n, _ := strconv.Atoi(m[1])
			switch m[2] {
			case "second", "minute", "hour":
				return now.Format("2006-01-02")
			case "day":
				return now.AddDate(0, 0, -n).Format("2006-01-02")
			case "week":
				return now.AddDate(0, 0, -7*n).Format("2006-01-02")
			case "month":
				// approximation: one month = 30 days
				return now.AddDate(0, 0, -30*n).Format("2006-01-02")
			case "year":
				// approximation: one year = 365 days
				return now.AddDate(0, 0, -365*n).Format("2006-01-02")
			}
		}
	}

	return now.Format("2006-01-02")
}
