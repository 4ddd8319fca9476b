// Package sanitizer normalizes raw form input before validation and storage.
//
// The helpers are pure string transformations composed with Apply or Compose:
//
//	clean := sanitizer.Apply(raw,
//		sanitizer.Trim,
//		sanitizer.CleanText,
//	)
//
// Normalization writes values back in their canonical shape: phone numbers as
// (NNN) NNN-NNNN, personal names capitalized per word, room numbers
// uppercased. Free-text fields (addresses, notes) pass through a strict
// bluemonday policy that strips markup to prevent stored XSS.
package sanitizer
