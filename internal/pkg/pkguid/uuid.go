package pkguid

import "github.com/google/uuid"

// UUID generates time-ordered UUIDv7 strings, so correlation ids sort by
// request start.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUIDv7 string, or a random UUIDv4 when the clock
// sequence cannot be read.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
