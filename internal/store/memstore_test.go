package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-relay/internal/room"
)

var _ room.Store = (*MemoryStore)(nil)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.GetRoom("r1")
	assert.False(t, ok)

	r := room.New("r1")
	s.SaveRoom(r)

	got, ok := s.GetRoom("r1")
	require.True(t, ok)
	assert.Same(t, r, got)
	assert.Len(t, s.Rooms(), 1)

	s.DeleteRoom("r1")
	_, ok = s.GetRoom("r1")
	assert.False(t, ok)
	assert.Empty(t, s.Rooms())

	// Deleting an unknown id is a no-op.
	s.DeleteRoom("r1")
}
