package payment_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/modules/payment"
	"github.com/hotelops/hotelkit/pkg/validator"
)

func validPaymentForm() payment.Form {
	return payment.Form{
		BookingID:     uuid.NewString(),
		Amount:        "150.00",
		Method:        "credit card",
		TransactionID: "TXN-2025-000123",
	}
}

func TestFormNormalize(t *testing.T) {
	t.Parallel()

	f := payment.Form{
		BookingID:     "  " + uuid.NewString() + "  ",
		Amount:        " 99.50 ",
		Method:        "  Credit Card ",
		TransactionID: "  TXN-1 ",
	}
	f.Normalize()

	assert.Equal(t, "99.50", f.Amount)
	assert.Equal(t, "credit card", f.Method)
	assert.Equal(t, "TXN-1", f.TransactionID)
}

func TestFormValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid form passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validPaymentForm().Validate())
	})

	t.Run("amount bounds", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"0":       "must be a number greater than 0",
			"-5":      "must be a number greater than 0",
			"abc":     "must be a number greater than 0",
			"1000000": "must be between 0.01 and 999999",
		}
		for value, message := range cases {
			f := validPaymentForm()
			f.Amount = value
			verrs := validator.ExtractValidationErrors(f.Validate())
			require.NotNil(t, verrs, value)
			assert.Equal(t, []string{message}, verrs.Get("amount"), value)
		}
	})

	t.Run("method restricted to allowed list", func(t *testing.T) {
		t.Parallel()

		f := validPaymentForm()
		f.Method = "barter"
		verrs := validator.ExtractValidationErrors(f.Validate())
		require.NotNil(t, verrs)
		assert.NotEmpty(t, verrs.Get("payment_method"))
	})

	t.Run("transaction reference shape", func(t *testing.T) {
		t.Parallel()

		f := validPaymentForm()
		f.TransactionID = "TXN 123"
		verrs := validator.ExtractValidationErrors(f.Validate())
		require.NotNil(t, verrs)
		assert.NotEmpty(t, verrs.Get("transaction_id"))
	})

	t.Run("booking reference must be a UUID", func(t *testing.T) {
		t.Parallel()

		f := validPaymentForm()
		f.BookingID = "7"
		verrs := validator.ExtractValidationErrors(f.Validate())
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"must be a valid selection"}, verrs.Get("booking_id"))
	})

	t.Run("empty form aggregates all required fields", func(t *testing.T) {
		t.Parallel()

		verrs := validator.ExtractValidationErrors(payment.Form{}.Validate())
		require.NotNil(t, verrs)
		for _, field := range []string{"booking_id", "amount", "payment_method", "transaction_id"} {
			assert.Equal(t, []string{"is required"}, verrs.Get(field), field)
		}
	})
}
