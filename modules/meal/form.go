package meal

import (
	"github.com/hotelops/hotelkit/pkg/forms"
	"github.com/hotelops/hotelkit/pkg/sanitizer"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// Descriptor is the static field map of the meal charge form.
var Descriptor = forms.Descriptor{
	Kind: forms.KindMeal,
	Fields: []string{
		"booking_id", "meal_name", "category", "quantity", "price_per_unit",
	},
	Required: []string{"booking_id", "meal_name", "category", "quantity", "price_per_unit"},
}

// Form carries a meal charge submission. Numeric fields bind as strings so
// malformed input surfaces as a field annotation.
type Form struct {
	BookingID    string `form:"booking_id"`
	MealName     string `form:"meal_name"`
	Category     string `form:"category"`
	Quantity     string `form:"quantity"`
	PricePerUnit string `form:"price_per_unit"`
}

// Normalize trims the fields and strips markup from the free-text meal name.
func (f *Form) Normalize() {
	f.BookingID = sanitizer.Trim(f.BookingID)
	f.MealName = sanitizer.Apply(f.MealName, sanitizer.CleanText, sanitizer.NormalizeWhitespace)
	f.Category = sanitizer.Trim(f.Category)
	f.Quantity = sanitizer.Trim(f.Quantity)
	f.PricePerUnit = sanitizer.Trim(f.PricePerUnit)
}

// Rules binds the field rules to the current values.
func (f Form) Rules() []validator.Rule {
	return []validator.Rule{
		validator.Chain(
			validator.Required("booking_id", f.BookingID),
			validator.UUID("booking_id", f.BookingID),
		),
		validator.Chain(
			validator.Required("meal_name", f.MealName),
			validator.MaxLen("meal_name", f.MealName, 255),
		),
		validator.Chain(
			validator.Required("category", f.Category),
			validator.Choice("category", f.Category, Categories),
		),
		validator.Chain(
			validator.Required("quantity", f.Quantity),
			validator.IntRange("quantity", f.Quantity, 1, 100),
		),
		validator.Chain(
			validator.Required("price_per_unit", f.PricePerUnit),
			validator.Amount("price_per_unit", f.PricePerUnit),
		),
	}
}

// Validate runs the full rule set and returns ValidationErrors on failure.
func (f Form) Validate() error {
	return validator.Apply(f.Rules()...)
}
