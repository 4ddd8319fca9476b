package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hotelops/hotelkit/pkg/validator"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"guest@example.com", true},
		{"first.last@hotel.co.uk", true},
		{"g+tag@example.io", true},
		{"", true}, // optional semantics: emptiness is Required's job
		{"plainaddress", false},
		{"no@dot", false},
		{"two words@example.com", false},
		{"@example.com", false},
		{"guest@.com", false},
		{"guest@exa mple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			err := validator.Apply(validator.Email("email", tt.value))
			if tt.valid {
				assert.NoError(t, err, "expected %q to pass", tt.value)
			} else {
				assert.Error(t, err, "expected %q to fail", tt.value)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"formatted US number", "(555) 123-4567", true},
		{"ten digits bare", "5551234567", true},
		{"fifteen digits", "123456789012345", true},
		{"sixteen digits", "1234567890123456", false},
		{"six digits", "555-123", false},
		{"international prefix", "+1 555 123 4567", true},
		{"empty is valid (optional)", "", true},
		{"letters only", "call me", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validator.Apply(validator.Phone("phone", tt.value))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRoomNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"101", true},
		{"A1 B", true},
		{"SUITE-12", true},
		{"", true},
		{"a1 b", false}, // lowercase: callers normalize first
		{"ROOM_12", false},
		{"VERYLONGROOM", false}, // over 10 characters
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			err := validator.Apply(validator.RoomNumber("number", tt.value))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
