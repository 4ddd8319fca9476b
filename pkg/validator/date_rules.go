package validator

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for all date fields (HTML date inputs).
const DateLayout = "2006-01-02"

// ParseDate parses a raw field value into a calendar date. The zero time and
// ErrInvalidDate are returned for values that do not form a real date.
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// StartOfDay truncates a timestamp to midnight in its location, so that date
// comparisons operate on whole calendar days rather than sub-day durations.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Date validates that a raw value parses to a real calendar date. Empty
// passes; combine with Required for mandatory date fields.
func Date(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			_, err := ParseDate(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid date",
		},
	}
}

// FutureOrToday validates that a date is not before the start of the current
// day. The reference day is passed explicitly so callers control the clock.
func FutureOrToday(field string, value, today time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !StartOfDay(value).Before(StartOfDay(today))
		},
		Error: ValidationError{
			Field:   field,
			Message: "cannot be in the past",
		},
	}
}

// DateRange validates that end falls strictly after start.
func DateRange(field string, start, end time.Time) Rule {
	return Rule{
		Check: func() bool {
			return StartOfDay(end).After(StartOfDay(start))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be after check-in date",
		},
	}
}

// StayLength validates the whole-day difference between two dates against
// minimum and maximum stay bounds.
func StayLength(field string, start, end time.Time, minDays, maxDays int) Rule {
	return Rule{
		Check: func() bool {
			nights := WholeDays(start, end)
			return nights >= minDays && nights <= maxDays
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("stay must be between %d and %d days", minDays, maxDays),
		},
	}
}

// MaxAdvance validates that a date is no more than maxDays after today.
func MaxAdvance(field string, value, today time.Time, maxDays int) Rule {
	return Rule{
		Check: func() bool {
			return WholeDays(StartOfDay(today), StartOfDay(value)) <= maxDays
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("cannot be more than %d days in advance", maxDays),
		},
	}
}

// NotFuture validates that a date does not fall after the reference day.
func NotFuture(field string, value, today time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !StartOfDay(value).After(StartOfDay(today))
		},
		Error: ValidationError{
			Field:   field,
			Message: "cannot be in the future",
		},
	}
}

// MinYearsOld validates a minimum age in whole years at the reference day.
func MinYearsOld(field string, birthdate, today time.Time, years int) Rule {
	return Rule{
		Check: func() bool {
			return yearsBetween(birthdate, today) >= years
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d year(s) old", years),
		},
	}
}

// MaxYearsOld validates a maximum age in whole years at the reference day.
func MaxYearsOld(field string, birthdate, today time.Time, years int) Rule {
	return Rule{
		Check: func() bool {
			return yearsBetween(birthdate, today) <= years
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("cannot be more than %d years ago", years),
		},
	}
}

// BirthDate applies the tiered date-of-birth policy: not in the future, at
// least one year old, not older than 120 years. Tiers short-circuit so only
// the first failure is reported.
func BirthDate(field string, value, today time.Time) Rule {
	return Chain(
		NotFuture(field, value, today),
		MinYearsOld(field, value, today, 1),
		MaxYearsOld(field, value, today, 120),
	)
}

// WholeDays returns the number of whole calendar days from start to end.
// Negative when end precedes start.
func WholeDays(start, end time.Time) int {
	return int(StartOfDay(end).Sub(StartOfDay(start)) / (24 * time.Hour))
}

// yearsBetween counts whole years elapsed, adjusting when the anniversary has
// not yet occurred this year.
func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() ||
		(to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}
