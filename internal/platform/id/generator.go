package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for published snapshots.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}
