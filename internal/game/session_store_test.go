// internal/game/session_store_test.go
package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okranz/daregame/internal/deck"
	"github.com/okranz/daregame/internal/models"
)

func storeSession(st *SessionStore, chatID int64) *Session {
	return NewSession(SessionConfig{
		ChatID:   chatID,
		Host:     models.Player{ID: 1, Name: "Hanna"},
		Deck:     deck.NewEngineWithRand(testCatalog(), rand.New(rand.NewSource(1))),
		Settings: models.DefaultSettings(),
		OnEnd: func(chatID int64, ended *Session) {
			st.Remove(chatID, ended)
		},
	})
}

func TestStoreReplaceReturnsDisplaced(t *testing.T) {
	st := NewSessionStore()

	first := storeSession(st, 7)
	assert.Nil(t, st.Replace(7, first))

	second := storeSession(st, 7)
	displaced := st.Replace(7, second)
	require.Same(t, first, displaced)

	got, ok := st.Get(7)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, st.Len())
}

func TestStoreRemoveIsPointerMatched(t *testing.T) {
	st := NewSessionStore()

	first := storeSession(st, 7)
	st.Replace(7, first)
	second := storeSession(st, 7)
	st.Replace(7, second)

	// Winding down the displaced session must not evict its successor.
	first.Terminate(EndReasonRestarted)
	got, ok := st.Get(7)
	require.True(t, ok)
	assert.Same(t, second, got)

	second.Terminate(EndReasonHost)
	_, ok = st.Get(7)
	assert.False(t, ok)
	assert.Zero(t, st.Len())
}

func TestStoreTracksChatsIndependently(t *testing.T) {
	st := NewSessionStore()
	a := storeSession(st, 1)
	b := storeSession(st, 2)
	st.Replace(1, a)
	st.Replace(2, b)

	assert.Equal(t, 2, st.Len())
	a.Terminate(EndReasonHost)
	assert.Equal(t, 1, st.Len())

	got, ok := st.Get(2)
	require.True(t, ok)
	assert.Same(t, b, got)
}
