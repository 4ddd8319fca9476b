package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

var (
	// strictPolicy strips every element and attribute.
	strictPolicy = bluemonday.StrictPolicy()

	// basicFormattingPolicy keeps the handful of formatting tags the notes
	// fields may carry; everything else is stripped.
	basicFormattingPolicy = newBasicFormattingPolicy()
)

func newBasicFormattingPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br", "p", "strong", "em", "u")
	return p
}

// CleanText sanitizes a free-text field (address, notes) for storage: control
// characters removed, all markup stripped, surrounding whitespace trimmed.
func CleanText(s string) string {
	return Apply(s,
		RemoveControlChars,
		strictPolicy.Sanitize,
		Trim,
	)
}

// CleanTextWithFormatting is CleanText but keeps basic formatting tags
// (br, p, strong, em, u).
func CleanTextWithFormatting(s string) string {
	return Apply(s,
		RemoveControlChars,
		basicFormattingPolicy.Sanitize,
		Trim,
	)
}
