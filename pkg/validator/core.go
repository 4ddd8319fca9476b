package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Numeric constrains the generic numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError is a single field failure.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors aggregates field failures from one validation pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages recorded for a field, in evaluation order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct failing field names in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ByField groups messages per field, preserving evaluation order within a
// field. Response writers use it as the error detail payload.
func (ve ValidationErrors) ByField() map[string][]string {
	if len(ve) == 0 {
		return nil
	}

	byField := make(map[string][]string)
	for _, err := range ve {
		byField[err.Field] = append(byField[err.Field], err.Message)
	}
	return byField
}

// Rule is a single validation predicate bound to a field and value.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// pass is a rule that always succeeds.
func pass() Rule {
	return Rule{Check: func() bool { return true }}
}

// Chain combines rules into one that fails with only the first failing tier.
// Rules capture their values at construction, so the tiers are evaluated
// immediately and the failing rule is returned as-is. Used for tiered checks
// (required before shape, date-of-birth tiers) where later failures would be
// noise.
func Chain(rules ...Rule) Rule {
	for _, rule := range rules {
		if !rule.Check() {
			return rule
		}
	}
	return pass()
}

// Apply evaluates all rules and returns ValidationErrors if any fail.
// A nil return means every rule passed.
func Apply(rules ...Rule) error {
	var verrs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			verrs = append(verrs, rule.Error)
		}
	}

	if verrs.IsEmpty() {
		return nil
	}
	return verrs
}

// ExtractValidationErrors unwraps ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
