package forms

// Kind discriminates the form descriptors. It is derived from the form's
// target action by the HTTP layer, never from request content.
type Kind string

const (
	KindGuest   Kind = "guest"
	KindRoom    Kind = "room"
	KindBooking Kind = "booking"
	KindPayment Kind = "payment"
	KindMeal    Kind = "meal"
)

// Descriptor is the static field map of one form kind: which named fields
// exist and which of them are required. Descriptors are fixed at compile
// time, not derived at runtime.
type Descriptor struct {
	Kind     Kind
	Fields   []string
	Required []string
}

// NewAnnotations returns an Untouched annotation set covering the
// descriptor's fields.
func (d Descriptor) NewAnnotations() Annotations {
	return NewAnnotations(d.Fields...)
}

// IsRequired reports whether a field must be present on submit.
func (d Descriptor) IsRequired(field string) bool {
	for _, f := range d.Required {
		if f == field {
			return true
		}
	}
	return false
}
