package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var personalNameRegex = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)

// Required validates that a string is not empty after trimming whitespace.
// It is the only rule that fails on emptiness; shape rules pass on empty
// values so optional fields stay valid when left blank.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "is required",
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			return v == "" || len(v) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(strings.TrimSpace(value)) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("cannot exceed %d characters", max),
		},
	}
}

// PersonalName validates a guest or contact name: trimmed length between 2
// and 100, restricted to letters, spaces, hyphens, apostrophes and periods.
func PersonalName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			if len(v) < 2 || len(v) > 100 {
				return false
			}
			return personalNameRegex.MatchString(v)
		},
		Error: ValidationError{
			Field:   field,
			Message: "can only contain letters, spaces, hyphens, and apostrophes (2-100 characters)",
		},
	}
}
