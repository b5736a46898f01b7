package idgen

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

type UUIDGenerator struct{}

func NewUUIDGenerator() ports.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random (version 4) UUID. Unlike uuid.New it reports an
// exhausted entropy source instead of panicking.
func (g *UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return id.String(), nil
}
