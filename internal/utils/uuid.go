package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side reference identifiers for outgoing
// orders. Prefers time-ordered UUIDv7 and falls back to v4 when the system
// clock is unusable.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
