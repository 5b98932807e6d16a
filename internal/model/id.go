package model

import "github.com/google/uuid"

// NewID returns a globally unique identifier for a new record. IDs are
// random UUIDs, so no collision check against the store is needed.
func NewID() string {
	return uuid.NewString()
}
