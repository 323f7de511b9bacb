package models

// Player is a participant in one session. Identity is the ID (the chat
// platform's user id); Name is display-only and re-synced on every join.
type Player struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
