package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToUpper removes surrounding whitespace and uppercases the rest.
func TrimToUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// TrimToLower removes surrounding whitespace and lowercases the rest.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// KeepDigits drops every non-digit character.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses consecutive whitespace into single spaces and
// trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars strips control characters, keeping common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripHTMLTags removes anything that looks like markup. Unlike CleanText it
// does not escape entities; use it for values that must stay plain (names,
// identifiers).
func StripHTMLTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// MaxLength truncates to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
