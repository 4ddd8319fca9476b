package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// PositiveFloat validates that a raw value parses to a float greater than
// zero. Empty passes; combine with Required for mandatory fields.
func PositiveFloat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			n, err := strconv.ParseFloat(v, 64)
			return err == nil && n > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a number greater than 0",
		},
	}
}

// FloatRange validates that a raw value parses to a float within [min, max].
func FloatRange(field, value string, min, max float64) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			n, err := strconv.ParseFloat(v, 64)
			return err == nil && n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %g and %g", min, max),
		},
	}
}

// Amount validates a monetary field: a positive number no greater than
// 999999.
func Amount(field, value string) Rule {
	return Chain(
		PositiveFloat(field, value),
		FloatRange(field, value, 0.01, 999999),
	)
}

// IntRange validates that a raw value parses to an integer within [min, max].
func IntRange(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			n, err := strconv.Atoi(v)
			return err == nil && n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d", min, max),
		},
	}
}

// Capacity validates a room capacity field: an integer between 1 and 10.
func Capacity(field, value string) Rule {
	return IntRange(field, value, 1, 10)
}

// Min validates that a numeric value is at least min.
func Min[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// Max validates that a numeric value is at most max.
func Max[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("cannot exceed %v", max),
		},
	}
}
