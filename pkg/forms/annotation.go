// Package forms carries the per-field annotation state shared by the four
// hotel form kinds (guest, room, booking, payment) and the meal-charge form.
//
// Each field moves between three states as it is evaluated:
//
//	Untouched -> Valid -> Invalid -> Valid -> ...
//
// Annotations are plain values recomputed from validation results; they are
// never cached across edits, and applying the same result twice leaves the
// annotation set unchanged.
package forms

import (
	"github.com/hotelops/hotelkit/pkg/validator"
)

// State is the visible validity of one field.
type State int

const (
	// Untouched means the field has not been evaluated yet.
	Untouched State = iota
	// Valid means the last evaluation passed.
	Valid
	// Invalid means the last evaluation failed; Message carries the reason.
	Invalid
)

func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "untouched"
	}
}

// Annotation is the visible validity state attached to a field.
type Annotation struct {
	State   State
	Message string
}

// Annotations maps field names to their current annotation.
type Annotations map[string]Annotation

// NewAnnotations returns an annotation set with every field Untouched.
func NewAnnotations(fields ...string) Annotations {
	a := make(Annotations, len(fields))
	for _, f := range fields {
		a[f] = Annotation{State: Untouched}
	}
	return a
}

// ApplyResult records the outcome of a full validation pass: fields with
// failures become Invalid with their first message, every other known field
// becomes Valid. Applying the same result twice is a no-op.
func (a Annotations) ApplyResult(err error) {
	verrs := validator.ExtractValidationErrors(err)

	for field := range a {
		if messages := verrs.Get(field); len(messages) > 0 {
			a[field] = Annotation{State: Invalid, Message: messages[0]}
		} else {
			a[field] = Annotation{State: Valid}
		}
	}
}

// SetInvalid marks a single field as failing. Used for failures discovered
// outside the rule engine, such as an availability conflict.
func (a Annotations) SetInvalid(field, message string) {
	a[field] = Annotation{State: Invalid, Message: message}
}

// Clear marks a field valid and removes its message. Idempotent: clearing an
// already-valid field changes nothing.
func (a Annotations) Clear(field string) {
	a[field] = Annotation{State: Valid}
}

// OK reports whether no field is currently Invalid.
func (a Annotations) OK() bool {
	for _, ann := range a {
		if ann.State == Invalid {
			return false
		}
	}
	return true
}

// Message returns the failure message for a field, empty when not Invalid.
func (a Annotations) Message(field string) string {
	ann := a[field]
	if ann.State != Invalid {
		return ""
	}
	return ann.Message
}

// Messages returns field -> messages for every Invalid field, in the shape
// the HTTP layer serializes on a rejected submit.
func (a Annotations) Messages() map[string][]string {
	out := make(map[string][]string)
	for field, ann := range a {
		if ann.State == Invalid {
			out[field] = []string{ann.Message}
		}
	}
	return out
}
