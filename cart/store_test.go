package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore()
	p := burger()

	_, err := s.Add("session-a", p, nil, 1)
	require.NoError(t, err)
	_, err = s.Add("session-b", p, extras(p, 100), 2)
	require.NoError(t, err)

	assert.Len(t, s.Items("session-a"), 1)
	assert.Len(t, s.Items("session-b"), 1)
	assert.Equal(t, "20.00", s.Total("session-a").StringFixed(2))
	assert.Equal(t, "47.00", s.Total("session-b").StringFixed(2))
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	p := burger()

	_, err := s.Add("session-a", p, nil, 2)
	require.NoError(t, err)

	s.Clear("session-a")
	assert.Empty(t, s.Items("session-a"))
	assert.Equal(t, "0.00", s.Total("session-a").StringFixed(2))
}

func TestStoreUnknownSessionIsEmpty(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.Items("ghost"))
	assert.True(t, s.Total("ghost").IsZero())

	_, err := s.Increment("ghost", "nope")
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestStoreLine(t *testing.T) {
	s := NewStore()
	p := burger()

	li, err := s.Add("session-a", p, extras(p, 101), 1)
	require.NoError(t, err)

	got, err := s.Line("session-a", li.CartItemID)
	require.NoError(t, err)
	assert.Equal(t, li.CartItemID, got.CartItemID)

	_, err = s.Line("session-a", "missing")
	assert.ErrorIs(t, err, ErrLineNotFound)
}
