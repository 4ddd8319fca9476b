package guest

import (
	"time"

	"github.com/hotelops/hotelkit/pkg/forms"
	"github.com/hotelops/hotelkit/pkg/sanitizer"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// Descriptor is the static field map of the guest form.
var Descriptor = forms.Descriptor{
	Kind: forms.KindGuest,
	Fields: []string{
		"first_name", "last_name", "email", "phone",
		"address", "date_of_birth", "notes",
	},
	Required: []string{"first_name", "last_name", "email"},
}

// Form carries a guest registration or edit submission. Date and free-text
// fields bind as strings; the rule engine owns their parsing.
type Form struct {
	FirstName   string `form:"first_name"`
	LastName    string `form:"last_name"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	Address     string `form:"address"`
	DateOfBirth string `form:"date_of_birth"`
	Notes       string `form:"notes"`
}

// Normalize writes the canonical representation back into the form: names
// capitalized per word, email lowercased, phone formatted when it has
// exactly 10 digits, free text stripped of markup.
func (f *Form) Normalize() {
	f.FirstName = sanitizer.FormatPersonalName(f.FirstName)
	f.LastName = sanitizer.FormatPersonalName(f.LastName)
	f.Email = sanitizer.NormalizeEmail(f.Email)
	f.Phone = sanitizer.FormatPhoneUS(f.Phone)
	f.Address = sanitizer.Apply(f.Address, sanitizer.CleanText, sanitizer.NormalizeWhitespace)
	f.DateOfBirth = sanitizer.Trim(f.DateOfBirth)
	f.Notes = sanitizer.Apply(f.Notes, sanitizer.CleanText, sanitizer.NormalizeWhitespace)
}

// Rules binds the field rules to the current values. Optional fields pass
// when empty; required emptiness is reported before shape failures.
func (f Form) Rules(today time.Time) []validator.Rule {
	rules := []validator.Rule{
		validator.Chain(
			validator.Required("first_name", f.FirstName),
			validator.PersonalName("first_name", f.FirstName),
		),
		validator.Chain(
			validator.Required("last_name", f.LastName),
			validator.PersonalName("last_name", f.LastName),
		),
		validator.Chain(
			validator.Required("email", f.Email),
			validator.Email("email", f.Email),
		),
		validator.Phone("phone", f.Phone),
		validator.MaxLen("address", f.Address, 255),
		validator.MaxLen("notes", f.Notes, 1000),
	}

	if f.DateOfBirth != "" {
		dob, err := validator.ParseDate(f.DateOfBirth)
		if err != nil {
			rules = append(rules, validator.Date("date_of_birth", f.DateOfBirth))
		} else {
			rules = append(rules, validator.BirthDate("date_of_birth", dob, today))
		}
	}

	return rules
}

// Validate runs the full rule set and returns ValidationErrors on failure.
func (f Form) Validate(today time.Time) error {
	return validator.Apply(f.Rules(today)...)
}

// FromGuest pre-fills the form for editing.
func FromGuest(g Guest) Form {
	f := Form{
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		Phone:     g.Phone,
		Address:   g.Address,
		Notes:     g.Notes,
	}
	if g.DateOfBirth != nil {
		f.DateOfBirth = g.DateOfBirth.Format(validator.DateLayout)
	}
	return f
}
