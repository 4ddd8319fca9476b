// Package payment records payments against bookings and keeps the booking's
// payment status in sync.
package payment

import (
	"time"

	"github.com/google/uuid"
)

// Methods lists the accepted payment methods.
var Methods = []string{"cash", "credit card", "debit card", "online"}

// Payment is one recorded payment against a booking. The transaction
// reference is unique across all payments.
type Payment struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	Amount        float64
	Method        string
	TransactionID string
	PaidAt        time.Time
	CreatedAt     time.Time
}
