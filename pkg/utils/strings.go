package utils

import (
	"strings"
	"unicode/utf8"
)

// ContainsString reports whether target is present in the slice.
func ContainsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

// CleanToValidUTF8 strips invalid UTF-8 sequences and NUL bytes so the value
// can be stored safely.
func CleanToValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return strings.ReplaceAll(s, "\x00", "")
	}
	return strings.ToValidUTF8(strings.ReplaceAll(s, "\x00", ""), "")
}

// SafeText truncates very long extracted text to a storable size while
// keeping it valid UTF-8.
func SafeText(s string) string {
	const maxLen = 20000
	s = CleanToValidUTF8(s)
	if len(s) <= maxLen {
		return s
	}
	cut := s[:maxLen]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
