// internal/handlers/game_server.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/okranz/daregame/internal/deck"
	"github.com/okranz/daregame/internal/game"
	"github.com/okranz/daregame/internal/models"
)

// GameServer owns the session store and the shared dependencies every
// session is wired with at creation time.
type GameServer struct {
	Store   *game.SessionStore
	Catalog []models.Card
	Hub     *EventHub
	Actions game.ActionLog

	// ExtraSinks are appended to every session's notifier fanout after the
	// hub, typically the database archiver.
	ExtraSinks []game.Notifier

	// Imports, when set, receives a record of every accepted deck import.
	Imports ImportArchiver

	// TimerUnit scales turn timer seconds; leave zero for real time.
	TimerUnit time.Duration

	Logger *logrus.Logger
}

// NewGameServer wires a server around the default catalog.
func NewGameServer(logger *logrus.Logger) *GameServer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GameServer{
		Store:   game.NewSessionStore(),
		Catalog: deck.DefaultCatalog(),
		Hub:     NewEventHub(logger),
		Logger:  logger,
	}
}

// Routes builds the HTTP surface.
func (gs *GameServer) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /sessions", gs.handleCreateSession)
	mux.HandleFunc("GET /sessions/{chat}", gs.handleGetSession)
	mux.HandleFunc("GET /sessions/{chat}/deck", gs.handleGetDeck)
	mux.HandleFunc("POST /sessions/{chat}/join", gs.handleJoin)
	mux.HandleFunc("POST /sessions/{chat}/leave", gs.handleLeave)
	mux.HandleFunc("POST /sessions/{chat}/start", gs.handleStart)
	mux.HandleFunc("POST /sessions/{chat}/choose", gs.handleChoose)
	mux.HandleFunc("POST /sessions/{chat}/skip", gs.handleSkip)
	mux.HandleFunc("POST /sessions/{chat}/vote/open", gs.handleVoteOpen)
	mux.HandleFunc("POST /sessions/{chat}/vote", gs.handleVoteCast)
	mux.HandleFunc("POST /sessions/{chat}/decision", gs.handleDecision)
	mux.HandleFunc("POST /sessions/{chat}/settings", gs.handleSettings)
	mux.HandleFunc("POST /sessions/{chat}/import", gs.handleImport)
	mux.HandleFunc("POST /sessions/{chat}/end", gs.handleEnd)
	mux.HandleFunc("GET /sessions/{chat}/events", gs.handleEvents)

	return mux
}

// newSession builds a session for the chat and installs it in the store,
// terminating any session it replaces.
func (gs *GameServer) newSession(chatID int64, host models.Player, settings models.Settings) *game.Session {
	sinks := game.Notifiers{gs.Hub}
	sinks = append(sinks, gs.ExtraSinks...)

	s := game.NewSession(game.SessionConfig{
		ChatID:   chatID,
		Host:     host,
		Deck:     deck.NewEngine(gs.Catalog),
		Settings: settings,
		Notifier: sinks,
		Actions:  gs.Actions,
		OnEnd: func(chatID int64, ended *game.Session) {
			gs.Store.Remove(chatID, ended)
		},
		TimerUnit: gs.TimerUnit,
		Logger:    gs.Logger,
	})

	if old := gs.Store.Replace(chatID, s); old != nil {
		old.Terminate(game.EndReasonRestarted)
	}
	return s
}

// ImportArchiver persists accepted deck imports.
type ImportArchiver interface {
	SaveImport(ctx context.Context, sessionID string, chatID int64, added int) error
}

// archiveImport records an accepted import off the request path.
func (gs *GameServer) archiveImport(s *game.Session, added int) {
	if gs.Imports == nil {
		return
	}
	sessionID := s.ID.String()
	chatID := s.ChatID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := gs.Imports.SaveImport(ctx, sessionID, chatID, added); err != nil {
			gs.Logger.WithError(err).WithField("chat_id", chatID).Warn("failed to archive deck import")
		}
	}()
}
