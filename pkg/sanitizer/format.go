package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FormatPhoneUS rewrites a 10-digit phone number as (NNN) NNN-NNNN. Numbers
// with any other digit count are preserved as entered to avoid data loss;
// validation decides whether they are acceptable.
func FormatPhoneUS(phone string) string {
	digits := KeepDigits(phone)
	if len(digits) != 10 {
		return strings.TrimSpace(phone)
	}
	return "(" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:10]
}

// FormatPersonalName capitalizes each word of a name, treating spaces,
// hyphens and apostrophes as word boundaries: "mary-jane o'brien" becomes
// "Mary-Jane O'Brien". Whitespace is normalized first.
func FormatPersonalName(name string) string {
	name = NormalizeWhitespace(name)
	if name == "" {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))

	start := 0
	for i := 0; i <= len(name); i++ {
		if i < len(name) && name[i] != ' ' && name[i] != '-' && name[i] != '\'' {
			continue
		}
		if i > start {
			b.WriteString(titleCaser.String(name[start:i]))
		}
		if i < len(name) {
			b.WriteByte(name[i])
		}
		start = i + 1
	}

	return b.String()
}

// NormalizeRoomNumber trims, collapses inner whitespace and uppercases a room
// identifier so "a1 b" round-trips to "A1 B".
func NormalizeRoomNumber(number string) string {
	return strings.ToUpper(NormalizeWhitespace(number))
}

// NormalizeEmail lowercases and trims an address without altering the local
// part beyond case; invalid shapes pass through for validation to reject.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
