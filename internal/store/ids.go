package store

import "github.com/google/uuid"

// NewID returns an opaque id for a new entity, unique across entity kinds
// with overwhelming probability. UUIDv7 keeps a time component alongside
// the randomness, so ids of the same kind sort roughly by creation.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Randomness exhaustion is the only failure mode; fall back to v4.
		return uuid.New().String()
	}
	return id.String()
}
