package utils

import "github.com/google/uuid"

// UUIDGenerator produces random identifiers: offline salts on the client and
// request trace ids on the server.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a UUIDv4 when the v7 clock source
// fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
