package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// local@domain.tld, no embedded whitespace, at least one dot in domain.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	roomNumberRegex = regexp.MustCompile(`^[A-Z0-9\- ]+$`)

	nonDigitRegex = regexp.MustCompile(`\D`)
)

// Email validates the local@domain.tld shape. Empty passes; combine with
// Required for mandatory email fields.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			return emailRegex.MatchString(v)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// Phone validates that the digit-only extraction of the value has between 10
// and 15 digits. Formatting characters (spaces, dashes, parentheses, leading
// plus) are ignored. Empty passes since phone numbers are optional on most
// forms.
func Phone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			digits := nonDigitRegex.ReplaceAllString(value, "")
			return len(digits) >= 10 && len(digits) <= 15
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least 10 digits (maximum 15)",
		},
	}
}

// RoomNumber validates an uppercased room identifier: letters, digits,
// hyphens and spaces. Callers normalize with sanitizer.NormalizeRoomNumber
// before validating.
func RoomNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			if len(v) > 10 {
				return false
			}
			return roomNumberRegex.MatchString(v)
		},
		Error: ValidationError{
			Field:   field,
			Message: "can only contain letters, numbers, hyphens, and spaces (up to 10 characters)",
		},
	}
}

// UUID validates a reference to another entity, such as the guest and room
// selectors on the booking form. Empty passes; combine with Required.
func UUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			_, err := uuid.Parse(v)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid selection",
		},
	}
}

// TransactionID validates a payment transaction reference.
func TransactionID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			return len(v) <= 100 && !strings.ContainsAny(v, " \t\r\n")
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a reference without whitespace (up to %d characters)", 100),
		},
	}
}
