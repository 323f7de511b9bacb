// internal/game/notifier.go
package game

import "github.com/okranz/daregame/internal/models"

// EndReason explains why a session was torn down.
type EndReason string

const (
	EndReasonHost          EndReason = "host_ended"
	EndReasonDeckExhausted EndReason = "deck_exhausted"
	EndReasonNoPlayers     EndReason = "no_players"
	EndReasonRestarted     EndReason = "restarted"
)

// Turn resolution reasons carried on TurnResolved.
const (
	ResolveCompleted  = "completed"
	ResolveRejected   = "rejected"
	ResolveSkipped    = "skipped"
	ResolveTimeout    = "timeout"
	ResolvePlayerLeft = "player_left"
)

// ScoreboardEntry is one row of the score table, ordered by score descending
// with ties broken by join order.
type ScoreboardEntry struct {
	Player models.Player `json:"player"`
	Score  int           `json:"score"`
	IsHost bool          `json:"isHost"`
}

// VoteTally is the public state of a completion vote.
type VoteTally struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Players int `json:"players"`
}

// Notifier is the presentation boundary. The core invokes it with payloads
// only, after the corresponding state mutation has committed and outside the
// session lock; rendering, message formats and transport live behind it.
// Implementations must not block for long; a slow sink delays only its own
// chat's notifications, never the state machine.
type Notifier interface {
	LobbyChanged(chatID int64, hostID int64, players []models.Player)
	TurnStarted(chatID int64, player models.Player, turnNumber int)
	CardRevealed(chatID int64, player models.Player, card models.Card, recycled bool)
	VoteOpened(chatID int64, player models.Player)
	VoteTallyChanged(chatID int64, tally VoteTally)
	VoteClosed(chatID int64, tally VoteTally)
	TurnResolved(chatID int64, player models.Player, success bool, scoreDelta int, reason string)
	SessionEnded(chatID int64, sessionID string, reason EndReason, scoreboard []ScoreboardEntry, roundsPlayed int)
}

// Notifiers fans out to several sinks in order.
type Notifiers []Notifier

func (ns Notifiers) LobbyChanged(chatID int64, hostID int64, players []models.Player) {
	for _, n := range ns {
		n.LobbyChanged(chatID, hostID, players)
	}
}

func (ns Notifiers) TurnStarted(chatID int64, player models.Player, turnNumber int) {
	for _, n := range ns {
		n.TurnStarted(chatID, player, turnNumber)
	}
}

func (ns Notifiers) CardRevealed(chatID int64, player models.Player, card models.Card, recycled bool) {
	for _, n := range ns {
		n.CardRevealed(chatID, player, card, recycled)
	}
}

func (ns Notifiers) VoteOpened(chatID int64, player models.Player) {
	for _, n := range ns {
		n.VoteOpened(chatID, player)
	}
}

func (ns Notifiers) VoteTallyChanged(chatID int64, tally VoteTally) {
	for _, n := range ns {
		n.VoteTallyChanged(chatID, tally)
	}
}

func (ns Notifiers) VoteClosed(chatID int64, tally VoteTally) {
	for _, n := range ns {
		n.VoteClosed(chatID, tally)
	}
}

func (ns Notifiers) TurnResolved(chatID int64, player models.Player, success bool, scoreDelta int, reason string) {
	for _, n := range ns {
		n.TurnResolved(chatID, player, success, scoreDelta, reason)
	}
}

func (ns Notifiers) SessionEnded(chatID int64, sessionID string, reason EndReason, scoreboard []ScoreboardEntry, roundsPlayed int) {
	for _, n := range ns {
		n.SessionEnded(chatID, sessionID, reason, scoreboard, roundsPlayed)
	}
}

// ActionLog receives a record of every committed transition. Implementations
// must be non-blocking; publish failures are their own concern.
type ActionLog interface {
	Record(chatID int64, sessionID string, action string, payload map[string]interface{})
}
