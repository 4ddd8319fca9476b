package room

import (
	"strconv"

	"github.com/hotelops/hotelkit/pkg/forms"
	"github.com/hotelops/hotelkit/pkg/sanitizer"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// Descriptor is the static field map of the room form.
var Descriptor = forms.Descriptor{
	Kind: forms.KindRoom,
	Fields: []string{
		"number", "room_type", "capacity", "price", "is_available", "description",
	},
	Required: []string{"number", "room_type", "capacity", "price"},
}

// Form carries a room create or edit submission. Numeric fields bind as
// strings so malformed input surfaces as a field annotation.
type Form struct {
	Number      string `form:"number"`
	RoomType    string `form:"room_type"`
	Capacity    string `form:"capacity"`
	Price       string `form:"price"`
	IsAvailable bool   `form:"is_available"`
	Description string `form:"description"`
}

// Normalize trims and uppercases the room number and strips markup from the
// description. Round-trip: "a1 b" normalizes to "A1 B" and then passes the
// room-number rule.
func (f *Form) Normalize() {
	f.Number = sanitizer.NormalizeRoomNumber(f.Number)
	f.RoomType = sanitizer.TrimToLower(f.RoomType)
	f.Capacity = sanitizer.Trim(f.Capacity)
	f.Price = sanitizer.Trim(f.Price)
	f.Description = sanitizer.Apply(f.Description, sanitizer.CleanText, sanitizer.NormalizeWhitespace)
}

// Rules binds the field rules to the current values.
func (f Form) Rules() []validator.Rule {
	return []validator.Rule{
		validator.Chain(
			validator.Required("number", f.Number),
			validator.RoomNumber("number", f.Number),
		),
		validator.Chain(
			validator.Required("room_type", f.RoomType),
			validator.Choice("room_type", f.RoomType, Types),
		),
		validator.Chain(
			validator.Required("capacity", f.Capacity),
			validator.Capacity("capacity", f.Capacity),
		),
		validator.Chain(
			validator.Required("price", f.Price),
			validator.Amount("price", f.Price),
		),
		validator.MaxLen("description", f.Description, 1000),
	}
}

// Validate runs the full rule set and returns ValidationErrors on failure.
func (f Form) Validate() error {
	return validator.Apply(f.Rules()...)
}

// FromRoom pre-fills the form for editing.
func FromRoom(r Room) Form {
	return Form{
		Number:      r.Number,
		RoomType:    string(r.Type),
		Capacity:    strconv.Itoa(r.Capacity),
		Price:       strconv.FormatFloat(r.Price, 'f', 2, 64),
		IsAvailable: r.IsAvailable,
		Description: r.Description,
	}
}
