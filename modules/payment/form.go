package payment

import (
	"github.com/hotelops/hotelkit/pkg/forms"
	"github.com/hotelops/hotelkit/pkg/sanitizer"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// Descriptor is the static field map of the payment form.
var Descriptor = forms.Descriptor{
	Kind: forms.KindPayment,
	Fields: []string{
		"booking_id", "amount", "payment_method", "transaction_id",
	},
	Required: []string{"booking_id", "amount", "payment_method", "transaction_id"},
}

// Form carries a payment submission. The amount binds as a string so a
// malformed number surfaces as a field annotation.
type Form struct {
	BookingID     string `form:"booking_id"`
	Amount        string `form:"amount"`
	Method        string `form:"payment_method"`
	TransactionID string `form:"transaction_id"`
}

// Normalize trims the fields and lowercases the method select.
func (f *Form) Normalize() {
	f.BookingID = sanitizer.Trim(f.BookingID)
	f.Amount = sanitizer.Trim(f.Amount)
	f.Method = sanitizer.TrimToLower(f.Method)
	f.TransactionID = sanitizer.Trim(f.TransactionID)
}

// Rules binds the field rules to the current values.
func (f Form) Rules() []validator.Rule {
	return []validator.Rule{
		validator.Chain(
			validator.Required("booking_id", f.BookingID),
			validator.UUID("booking_id", f.BookingID),
		),
		validator.Chain(
			validator.Required("amount", f.Amount),
			validator.Amount("amount", f.Amount),
		),
		validator.Chain(
			validator.Required("payment_method", f.Method),
			validator.Choice("payment_method", f.Method, Methods),
		),
		validator.Chain(
			validator.Required("transaction_id", f.TransactionID),
			validator.TransactionID("transaction_id", f.TransactionID),
		),
	}
}

// Validate runs the full rule set and returns ValidationErrors on failure.
func (f Form) Validate() error {
	return validator.Apply(f.Rules()...)
}
