package booking

import (
	"time"

	"github.com/hotelops/hotelkit/pkg/forms"
	"github.com/hotelops/hotelkit/pkg/sanitizer"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// Bookings may be placed at most a year ahead, and a stay runs from one
// night up to ninety.
const (
	maxAdvanceDays = 365
	minStayNights  = 1
	maxStayNights  = 90
)

// Descriptor is the static field map of the booking form.
var Descriptor = forms.Descriptor{
	Kind: forms.KindBooking,
	Fields: []string{
		"guest_id", "room_id", "check_in", "check_out", "status", "notes",
	},
	Required: []string{"guest_id", "room_id", "check_in", "check_out"},
}

// Form carries a booking create or edit submission. Dates bind as strings;
// the rule engine owns their parsing.
type Form struct {
	GuestID  string `form:"guest_id"`
	RoomID   string `form:"room_id"`
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
	Status   string `form:"status"`
	Notes    string `form:"notes"`
}

// Normalize trims identifiers and dates and strips markup from notes.
func (f *Form) Normalize() {
	f.GuestID = sanitizer.Trim(f.GuestID)
	f.RoomID = sanitizer.Trim(f.RoomID)
	f.CheckIn = sanitizer.Trim(f.CheckIn)
	f.CheckOut = sanitizer.Trim(f.CheckOut)
	f.Status = sanitizer.Trim(f.Status)
	f.Notes = sanitizer.Apply(f.Notes, sanitizer.CleanText, sanitizer.NormalizeWhitespace)
}

// Rules binds the field rules to the current values. The cross-field range
// and stay-length rules apply only once both dates parse; each date's own
// parse failure is reported on its own field.
func (f Form) Rules(today time.Time) []validator.Rule {
	rules := []validator.Rule{
		validator.Chain(
			validator.Required("guest_id", f.GuestID),
			validator.UUID("guest_id", f.GuestID),
		),
		validator.Chain(
			validator.Required("room_id", f.RoomID),
			validator.UUID("room_id", f.RoomID),
		),
		validator.MaxLen("notes", f.Notes, 1000),
	}

	if f.Status != "" {
		rules = append(rules, validator.Choice("status", f.Status, Statuses))
	}

	checkIn, inErr := validator.ParseDate(f.CheckIn)
	checkOut, outErr := validator.ParseDate(f.CheckOut)

	rules = append(rules,
		validator.Chain(
			validator.Required("check_in", f.CheckIn),
			validator.Date("check_in", f.CheckIn),
		),
		validator.Chain(
			validator.Required("check_out", f.CheckOut),
			validator.Date("check_out", f.CheckOut),
		),
	)

	if inErr == nil {
		rules = append(rules,
			validator.FutureOrToday("check_in", checkIn, today),
			validator.MaxAdvance("check_in", checkIn, today, maxAdvanceDays),
		)
	}
	if inErr == nil && outErr == nil {
		rules = append(rules, validator.Chain(
			validator.DateRange("check_out", checkIn, checkOut),
			validator.StayLength("check_out", checkIn, checkOut, minStayNights, maxStayNights),
		))
	}

	return rules
}

// Validate runs the full rule set and returns ValidationErrors on failure.
func (f Form) Validate(today time.Time) error {
	return validator.Apply(f.Rules(today)...)
}

// FromBooking pre-fills the form for editing.
func FromBooking(b Booking) Form {
	return Form{
		GuestID:  b.GuestID.String(),
		RoomID:   b.RoomID.String(),
		CheckIn:  b.CheckIn.Format(validator.DateLayout),
		CheckOut: b.CheckOut.Format(validator.DateLayout),
		Status:   string(b.Status),
		Notes:    b.Notes,
	}
}
