package guest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/modules/guest"
	"github.com/hotelops/hotelkit/pkg/validator"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func validForm() guest.Form {
	return guest.Form{
		FirstName:   "mary-jane",
		LastName:    "o'brien",
		Email:       "Mary@Example.COM",
		Phone:       "5551234567",
		DateOfBirth: "1990-05-20",
	}
}

func TestFormNormalize(t *testing.T) {
	t.Parallel()

	f := validForm()
	f.Notes = `<script>alert("x")</script>prefers quiet rooms`
	f.Normalize()

	assert.Equal(t, "Mary-Jane", f.FirstName)
	assert.Equal(t, "O'Brien", f.LastName)
	assert.Equal(t, "mary@example.com", f.Email)
	assert.Equal(t, "(555) 123-4567", f.Phone)
	assert.NotContains(t, f.Notes, "<script>")
	assert.Contains(t, f.Notes, "prefers quiet rooms")
}

func TestFormValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid form passes", func(t *testing.T) {
		t.Parallel()

		f := validForm()
		f.Normalize()
		assert.NoError(t, f.Validate(today))
	})

	t.Run("required fields win over shape", func(t *testing.T) {
		t.Parallel()

		f := guest.Form{}
		err := f.Validate(today)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)

		assert.Equal(t, []string{"is required"}, verrs.Get("first_name"))
		assert.Equal(t, []string{"is required"}, verrs.Get("email"))
		// Optional fields stay silent when empty.
		assert.Empty(t, verrs.Get("phone"))
		assert.Empty(t, verrs.Get("date_of_birth"))
	})

	t.Run("date of birth tiers short-circuit", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"2026-01-01": "cannot be in the future",
			"2025-01-01": "must be at least 1 year(s) old",
			"1800-01-01": "cannot be more than 120 years ago",
		}
		for dob, want := range cases {
			f := validForm()
			f.DateOfBirth = dob

			verrs := validator.ExtractValidationErrors(f.Validate(today))
			require.NotNil(t, verrs, dob)
			assert.Equal(t, []string{want}, verrs.Get("date_of_birth"))
		}
	})

	t.Run("unparseable date of birth", func(t *testing.T) {
		t.Parallel()

		f := validForm()
		f.DateOfBirth = "not-a-date"
		verrs := validator.ExtractValidationErrors(f.Validate(today))
		require.NotNil(t, verrs)
		assert.Len(t, verrs.Get("date_of_birth"), 1)
	})

	t.Run("phone digit bounds", func(t *testing.T) {
		t.Parallel()

		f := validForm()
		f.Phone = "555-123"
		verrs := validator.ExtractValidationErrors(f.Validate(today))
		require.NotNil(t, verrs)
		assert.NotEmpty(t, verrs.Get("phone"))
	})
}
