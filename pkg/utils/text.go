package utils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// commonEnglishWords are function words that rarely appear in Spanish text.
// IsEnglishText counts whole-word hits against this list.
var commonEnglishWords = []string{
	"the", "and", "of", "to", "a", "in", "that", "have", "i", "it",
	"for", "not", "on", "with", "he", "as", "you", "do", "at", "this",
	"but", "his", "by", "from", "they", "we", "say", "her", "she", "or",
	"an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know",
	"take", "people",
}

// CleanGeneratedText normalizes model output: strips one wrapping quote on
// each side, collapses newlines and whitespace runs to single spaces, trims.
func CleanGeneratedText(s string) string {
	if s == "" {
		return ""
	}
	if s[0] == '"' || s[0] == '\'' {
		s = s[1:]
	}
	if n := len(s); n > 0 && (s[n-1] == '"' || s[n-1] == '\'') {
		s = s[:n-1]
	}
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsEnglishText reports whether text looks English. Texts shorter than 10
// characters are never flagged; otherwise more than 3 distinct whole-word
// hits from commonEnglishWords counts as English. Heuristic, not a detector.
func IsEnglishText(text string) bool {
	if len(text) < 10 {
		return false
	}
	tokens := map[string]struct{}{}
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
	}) {
		tokens[strings.Trim(tok, "'")] = struct{}{}
	}
	hits := 0
	for _, w := range commonEnglishWords {
		if _, ok := tokens[w]; ok {
			hits++
		}
	}
	return hits > 3
}

// ContainsAny reports whether s contains any of the given fragments.
func ContainsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if f != "" && strings.Contains(s, f) {
			return true
		}
	}
	return false
}
