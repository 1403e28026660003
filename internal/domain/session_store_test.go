package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_PutGetClose(t *testing.T) {
	store, err := NewSessionStore(2, nil)
	require.NoError(t, err)

	require.NoError(t, store.Put(&Session{Topic: "a"}))
	require.ErrorIs(t, store.Put(&Session{Topic: "a"}), ErrSessionExists)

	got, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Topic)

	_, err = store.Get("b")
	require.ErrorIs(t, err, ErrSessionNotFound)

	closed, err := store.Close("a")
	require.NoError(t, err)
	assert.Same(t, got, closed)
	assert.Equal(t, 0, store.Len())

	_, err = store.Close("a")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_EvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []string

	store, err := NewSessionStore(2, func(s *Session) {
		evicted = append(evicted, s.Topic)
	})
	require.NoError(t, err)

	require.NoError(t, store.Put(&Session{Topic: "a"}))
	require.NoError(t, store.Put(&Session{Topic: "b"}))

	_, err = store.Get("a")
	require.NoError(t, err)

	require.NoError(t, store.Put(&Session{Topic: "c"}))

	assert.Equal(t, []string{"b"}, evicted)
	assert.ElementsMatch(t, []string{"a", "c"}, store.Topics())
}

func TestSessionStore_CloseIsNotEviction(t *testing.T) {
	calls := 0

	store, err := NewSessionStore(1, func(*Session) { calls++ })
	require.NoError(t, err)

	require.NoError(t, store.Put(&Session{Topic: "a"}))
	_, err = store.Close("a")
	require.NoError(t, err)

	assert.Equal(t, 0, calls)
}

func TestNewSessionStore_DefaultCapacity(t *testing.T) {
	store, err := NewSessionStore(0, nil)
	require.NoError(t, err)

	for i := 0; i < DefaultMaxSessions+1; i++ {
		require.NoError(t, store.Put(&Session{Topic: fmt.Sprintf("topic-%d", i)}))
	}

	assert.Equal(t, DefaultMaxSessions, store.Len())
}
