// internal/game/session_store.go
package game

import "sync"

// SessionStore maps chats to their live sessions. It only guards the map;
// each session carries its own lock, so store operations never touch session
// state while holding the store lock.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Replace installs s as the chat's session and returns the one it displaced,
// if any. The caller terminates the displaced session after this returns;
// doing it here would re-enter the store lock through the session's OnEnd.
func (st *SessionStore) Replace(chatID int64, s *Session) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	old := st.sessions[chatID]
	st.sessions[chatID] = s
	return old
}

// Get returns the chat's session, if one exists.
func (st *SessionStore) Get(chatID int64) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[chatID]
	return s, ok
}

// Remove drops the chat's entry only if it still points at s. A session that
// was already replaced must not evict its successor when it winds down.
func (st *SessionStore) Remove(chatID int64, s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.sessions[chatID] == s {
		delete(st.sessions, chatID)
	}
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
