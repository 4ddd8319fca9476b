// Package meal records meal charges against bookings.
package meal

import (
	"time"

	"github.com/google/uuid"
)

// Categories lists the meal categories a charge can fall under.
var Categories = []string{"Breakfast", "Lunch", "Dinner", "Snacks"}

// Transaction is one meal charge. TotalPrice is always quantity times the
// unit price, computed at creation.
type Transaction struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	MealName     string
	Category     string
	Quantity     int
	PricePerUnit float64
	TotalPrice   float64
	CreatedAt    time.Time
}
