// Package validator implements the field validation rules used by the hotel
// management forms (guests, rooms, bookings, payments, meal charges).
//
// Every rule is a pure function of its inputs: it captures the raw value at
// construction time and reports a pass/fail with a human-readable message.
// Rules never reach into ambient state - predicates that depend on the current
// day take an explicit reference date, and cross-field rules take both values
// as parameters.
//
// Shape rules treat an empty value as passing so that optional fields stay
// valid when left blank. Required fields combine Required with the shape rule
// via Chain, which reports the "required" failure before the shape failure:
//
//	err := validator.Apply(
//		validator.Chain(
//			validator.Required("email", email),
//			validator.Email("email", email),
//		),
//		validator.Phone("phone", phone), // optional: empty passes
//	)
//
// Apply evaluates all rules and aggregates failures into ValidationErrors,
// one entry per failing field.
package validator
