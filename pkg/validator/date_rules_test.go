package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/pkg/validator"
)

func date(s string) time.Time {
	t, err := validator.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("valid calendar date", func(t *testing.T) {
		t.Parallel()

		d, err := validator.ParseDate("2025-06-15")
		require.NoError(t, err)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.June, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"2025-02-30", "2025-13-01", "not-a-date", "15/06/2025"} {
			_, err := validator.ParseDate(raw)
			assert.ErrorIs(t, err, validator.ErrInvalidDate, "raw=%q", raw)
		}
	})
}

func TestFutureOrToday(t *testing.T) {
	t.Parallel()

	today := date("2025-06-15")

	assert.NoError(t, validator.Apply(validator.FutureOrToday("check_in", date("2025-06-15"), today)))
	assert.NoError(t, validator.Apply(validator.FutureOrToday("check_in", date("2025-06-16"), today)))

	err := validator.Apply(validator.FutureOrToday("check_in", date("2025-06-14"), today))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "cannot be in the past", verrs[0].Message)
}

func TestDateRange(t *testing.T) {
	t.Parallel()

	t.Run("end before start fails", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.DateRange("check_out", date("2025-06-10"), date("2025-06-09")))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "must be after check-in date", verrs[0].Message)
	})

	t.Run("same day fails", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.DateRange("check_out", date("2025-06-10"), date("2025-06-10")))
		assert.Error(t, err)
	})

	t.Run("one night passes", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.DateRange("check_out", date("2025-06-10"), date("2025-06-11")))
		assert.NoError(t, err)
	})
}

func TestStayLength(t *testing.T) {
	t.Parallel()

	t.Run("one-day stay passes minimum", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.StayLength("check_out", date("2025-06-10"), date("2025-06-11"), 1, 90))
		assert.NoError(t, err)
	})

	t.Run("over ninety days fails maximum", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.StayLength("check_out", date("2025-01-01"), date("2025-12-31"), 1, 90))
		assert.Error(t, err)
	})

	t.Run("exactly ninety days passes", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.StayLength("check_out", date("2025-06-01"), date("2025-08-30"), 1, 90))
		assert.NoError(t, err)
	})
}

func TestBirthDate(t *testing.T) {
	t.Parallel()

	today := date("2025-06-15")

	tests := []struct {
		name    string
		dob     string
		message string // empty means valid
	}{
		{"future date", "2026-01-01", "cannot be in the future"},
		{"under one year old", "2025-01-01", "must be at least 1 year(s) old"},
		{"older than 120 years", "1800-01-01", "cannot be more than 120 years ago"},
		{"valid adult", "1990-05-20", ""},
		{"exactly one year ago", "2024-06-15", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validator.Apply(validator.BirthDate("date_of_birth", date(tt.dob), today))
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1, "tiers must short-circuit to a single failure")
			assert.Equal(t, tt.message, verrs[0].Message)
		})
	}
}

func TestMaxAdvance(t *testing.T) {
	t.Parallel()

	today := date("2025-06-15")

	assert.NoError(t, validator.Apply(validator.MaxAdvance("check_in", date("2026-06-15"), today, 365)))
	assert.Error(t, validator.Apply(validator.MaxAdvance("check_in", date("2026-06-16"), today, 365)))
}

func TestWholeDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, validator.WholeDays(date("2025-06-10"), date("2025-06-11")))
	assert.Equal(t, 364, validator.WholeDays(date("2025-01-01"), date("2025-12-31")))
	assert.Equal(t, -1, validator.WholeDays(date("2025-06-11"), date("2025-06-10")))
	assert.Equal(t, 0, validator.WholeDays(date("2025-06-10"), date("2025-06-10")))
}
