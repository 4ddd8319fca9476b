// Package room manages the room inventory: room forms, validation and
// persistence.
package room

import (
	"time"

	"github.com/google/uuid"
)

// Type is the room category. Suites carry a two-night minimum stay.
type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
	TypeSuite  Type = "suite"
)

// Types lists the allowed room categories.
var Types = []string{string(TypeSingle), string(TypeDouble), string(TypeSuite)}

// Room is one rentable unit.
type Room struct {
	ID          uuid.UUID
	Number      string
	Type        Type
	Capacity    int
	Price       float64 // per night
	IsAvailable bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
