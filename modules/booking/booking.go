// Package booking manages reservations: the booking form, availability
// checks, stay pricing and the booking lifecycle.
package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelops/hotelkit/pkg/validator"
)

// Status is the booking lifecycle state.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusCheckedIn  Status = "Checked In"
	StatusCheckedOut Status = "Checked Out"
	StatusNoShow     Status = "No Show"
)

// Statuses lists the allowed booking states.
var Statuses = []string{
	string(StatusPending), string(StatusCheckedIn),
	string(StatusCheckedOut), string(StatusNoShow),
}

// BlockingStatuses are the states that keep a room occupied for the
// availability overlap query.
var BlockingStatuses = []Status{StatusPending, StatusCheckedIn}

// PaymentStatus tracks how much of the booking total has been settled.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentOverdue  PaymentStatus = "overdue"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is one reservation of a room for a guest.
type Booking struct {
	ID            uuid.UUID
	GuestID       uuid.UUID
	RoomID        uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Status        Status
	PaymentStatus PaymentStatus
	TotalPrice    float64
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Nights returns the whole-day length of the stay.
func (b Booking) Nights() int {
	return validator.WholeDays(b.CheckIn, b.CheckOut)
}

// DerivePaymentStatus computes the payment state from the amount settled so
// far. A stay past its check-out date that is not fully paid is overdue.
func DerivePaymentStatus(total, paid float64, checkOut, now time.Time) PaymentStatus {
	switch {
	case total > 0 && paid >= total:
		return PaymentPaid
	case now.After(checkOut) && paid < total:
		return PaymentOverdue
	case paid > 0:
		return PaymentPartial
	default:
		return PaymentPending
	}
}

// Conflict describes the booking blocking a requested date range.
type Conflict struct {
	BookingID uuid.UUID `json:"booking_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Status    Status    `json:"status"`
}
