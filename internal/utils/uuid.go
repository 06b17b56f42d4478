package utils

import "github.com/google/uuid"

// UUIDGenerator produces object keys for uploaded images. Keys are UUIDv7 so
// that a bucket listing is ordered by upload time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random UUIDv4 when the clock cannot be read.
func (*UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
