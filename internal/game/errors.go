// internal/game/errors.go
package game

import "errors"

// Typed results for every operation. Callers match with errors.Is; the wire
// boundary maps them to machine-readable reason codes via Code.
var (
	ErrNotFound         = errors.New("no session for this chat")
	ErrNotHost          = errors.New("only the host may do this")
	ErrNotYourTurn      = errors.New("it is not your turn")
	ErrAlreadyJoined    = errors.New("player already joined")
	ErrNotJoined        = errors.New("player is not in the game")
	ErrHostCannotLeave  = errors.New("the host cannot leave; end the game instead")
	ErrNoPlayers        = errors.New("no players in the session")
	ErrNotEnoughPlayers = errors.New("not enough players to start")
	ErrDeckExhausted    = errors.New("no cards left for the chosen kind")
	ErrInvalidSetting   = errors.New("invalid setting value")
	ErrMalformedImport  = errors.New("malformed deck import")
	ErrAlreadyStarted   = errors.New("game already started")
	ErrNotInProgress    = errors.New("game is not in progress")
	ErrNoActiveTurn     = errors.New("no active turn")
	ErrNoChoicePending  = errors.New("no truth-or-dare choice pending")
	ErrNoTaskPending    = errors.New("no task awaiting resolution")
	ErrVoteAlreadyOpen  = errors.New("a vote is already open")
	ErrNoVoteOpen       = errors.New("no vote is open")
)

var errorCodes = map[error]string{
	ErrNotFound:         "not_found",
	ErrNotHost:          "not_host",
	ErrNotYourTurn:      "not_your_turn",
	ErrAlreadyJoined:    "already_joined",
	ErrNotJoined:        "not_joined",
	ErrHostCannotLeave:  "host_cannot_leave",
	ErrNoPlayers:        "no_players",
	ErrNotEnoughPlayers: "not_enough_players",
	ErrDeckExhausted:    "deck_exhausted",
	ErrInvalidSetting:   "invalid_setting",
	ErrMalformedImport:  "malformed_import",
	ErrAlreadyStarted:   "already_started",
	ErrNotInProgress:    "not_in_progress",
	ErrNoActiveTurn:     "no_active_turn",
	ErrNoChoicePending:  "no_choice_pending",
	ErrNoTaskPending:    "no_task_pending",
	ErrVoteAlreadyOpen:  "vote_already_open",
	ErrNoVoteOpen:       "no_vote_open",
}

// Code returns the stable machine-readable reason for a game error, or
// "internal" for anything else.
func Code(err error) string {
	for sentinel, code := range errorCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return "internal"
}
