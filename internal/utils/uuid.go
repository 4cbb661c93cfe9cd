package utils

import "github.com/google/uuid"

// UUIDGenerator is the [IDGenerator] stamped on every API request.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a generator of UUID v7 request IDs.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// Generate returns a time-ordered UUID v7. If the v7 clock source fails it
// falls back to a random v4 so a request never goes out without an ID.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
