// internal/database/archiver.go
package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/okranz/daregame/internal/game"
	"github.com/okranz/daregame/internal/models"
)

// Archiver is a notifier sink that persists final scoreboards. Writes run on
// their own goroutine; a slow database delays nothing in the game.
type Archiver struct {
	store *Store
	log   *logrus.Logger
}

// NewArchiver wraps a store as a notifier sink.
func NewArchiver(store *Store, logger *logrus.Logger) *Archiver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Archiver{store: store, log: logger}
}

func (a *Archiver) SessionEnded(chatID int64, sessionID string, reason game.EndReason, board []game.ScoreboardEntry, rounds int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.store.SaveResult(ctx, sessionID, chatID, reason, board, rounds); err != nil {
			a.log.WithError(err).WithField("chat_id", chatID).Warn("failed to archive game result")
		}
	}()
}

// The remaining notifier events carry no durable state.

func (a *Archiver) LobbyChanged(int64, int64, []models.Player)           {}
func (a *Archiver) TurnStarted(int64, models.Player, int)                {}
func (a *Archiver) CardRevealed(int64, models.Player, models.Card, bool) {}
func (a *Archiver) VoteOpened(int64, models.Player)                      {}
func (a *Archiver) VoteTallyChanged(int64, game.VoteTally)               {}
func (a *Archiver) VoteClosed(int64, game.VoteTally)                     {}
func (a *Archiver) TurnResolved(int64, models.Player, bool, int, string) {}
