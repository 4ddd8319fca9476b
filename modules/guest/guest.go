// Package guest manages hotel guest profiles: registration and edit forms,
// validation, and persistence.
package guest

import (
	"time"

	"github.com/google/uuid"
)

// Guest is a registered hotel guest.
type Guest struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	DateOfBirth *time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns the guest's display name.
func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
