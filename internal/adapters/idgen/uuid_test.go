package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGeneratorNewID(t *testing.T) {
	gen := NewUUIDGenerator()
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		id, err := gen.NewID()
		require.NoError(t, err)

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
