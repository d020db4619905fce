package models

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a string, strips diacritics, collapses every
// non-alphanumeric run into a single separator, and trims the result to at
// most maxLen characters (without leaving a trailing separator)
func Slugify(s string, maxLen int) string {
	s = strings.ToLower(norm.NFC.String(s))
	s = RemoveDiacritics(s)
	s = nonAlnumRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if maxLen > 0 && len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	return s
}

// RemoveDiacritics removes diacritical marks from a string
func RemoveDiacritics(s string) string {
	t := norm.NFD.String(s)
	var result strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue // Skip combining marks
		}
		result.WriteRune(r)
	}
	return result.String()
}
