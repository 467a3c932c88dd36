package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new time-ordered (v7) identifier string, so ids of
// listings created later sort after earlier ones
func GenerateID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// IsValidID reports whether id parses as a UUID
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
