package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", "Alice"),
			validator.Email("email", "alice@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing field", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", ""),
			validator.Email("email", "not-an-email"),
			validator.Phone("phone", "555-123"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"name", "email", "phone"}, verrs.Fields())
	})

	t.Run("field failure does not affect other fields", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", "Bob"),
			validator.Email("email", "broken@"),
		)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.False(t, verrs.Has("name"))
		assert.True(t, verrs.Has("email"))
	})
}

func TestChain(t *testing.T) {
	t.Parallel()

	t.Run("required reported before shape", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.Chain(
			validator.Required("email", ""),
			validator.Email("email", ""),
		))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "is required", verrs[0].Message)
	})

	t.Run("shape reported when value present", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.Chain(
			validator.Required("email", "nope"),
			validator.Email("email", "nope"),
		))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "must be a valid email address", verrs[0].Message)
	})

	t.Run("passes when all tiers pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.Chain(
			validator.Required("email", "a@b.co"),
			validator.Email("email", "a@b.co"),
		))
		assert.NoError(t, err)
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	var verrs validator.ValidationErrors
	verrs.Add("amount", "must be a number greater than 0")
	verrs.Add("amount", "cannot exceed 999999")
	verrs.Add("method", "is required")

	assert.True(t, verrs.Has("amount"))
	assert.Equal(t, []string{"must be a number greater than 0", "cannot exceed 999999"}, verrs.Get("amount"))
	assert.Equal(t, []string{"amount", "method"}, verrs.Fields())
	assert.Contains(t, verrs.Error(), "amount: must be a number greater than 0")
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Required("name", ""))
	assert.True(t, validator.IsValidationError(err))
	assert.True(t, validator.IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
}
