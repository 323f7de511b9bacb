// internal/handlers/events_ws.go
package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sirupsen/logrus"

	"github.com/okranz/daregame/internal/game"
	"github.com/okranz/daregame/internal/middleware"
	"github.com/okranz/daregame/internal/models"
)

// Event is one presentation-layer notification as sent to stream clients.
type Event struct {
	Type   string                 `json:"type"`
	ChatID int64                  `json:"chatId"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

// subscriberBuffer is the per-client event backlog. A client that falls this
// far behind starts losing events rather than stalling the publisher.
const subscriberBuffer = 32

// Subscription is one client's handle on a chat's event stream.
type Subscription struct {
	ch    chan Event
	close func()
}

// C returns the event channel.
func (s *Subscription) C() <-chan Event { return s.ch }

// Close detaches the subscription from the hub.
func (s *Subscription) Close() { s.close() }

// EventHub fans session notifications out to websocket subscribers, keyed by
// chat. It satisfies the game engine's Notifier; publishes never block, a
// slow subscriber just drops events.
type EventHub struct {
	mu   sync.Mutex
	subs map[int64]map[*Subscription]struct{}
	log  *logrus.Logger
}

// NewEventHub returns an empty hub.
func NewEventHub(logger *logrus.Logger) *EventHub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &EventHub{
		subs: make(map[int64]map[*Subscription]struct{}),
		log:  logger,
	}
}

// Subscribe registers a client for one chat's events.
func (h *EventHub) Subscribe(chatID int64) *Subscription {
	sub := &Subscription{ch: make(chan Event, subscriberBuffer)}
	sub.close = func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.subs[chatID]; ok {
			delete(set, sub)
			if len(set) == 0 {
				delete(h.subs, chatID)
			}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[chatID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[chatID] = set
	}
	set[sub] = struct{}{}
	return sub
}

func (h *EventHub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs[ev.ChatID] {
		select {
		case sub.ch <- ev:
		default:
			h.log.WithFields(logrus.Fields{
				"chat_id": ev.ChatID,
				"type":    ev.Type,
			}).Warn("event subscriber buffer full, dropping event")
		}
	}
}

func (h *EventHub) LobbyChanged(chatID int64, hostID int64, players []models.Player) {
	h.publish(Event{Type: "lobby_changed", ChatID: chatID, Data: map[string]interface{}{
		"hostId":  hostID,
		"players": players,
	}})
}

func (h *EventHub) TurnStarted(chatID int64, player models.Player, turnNumber int) {
	h.publish(Event{Type: "turn_started", ChatID: chatID, Data: map[string]interface{}{
		"player": player,
		"turn":   turnNumber,
	}})
}

func (h *EventHub) CardRevealed(chatID int64, player models.Player, card models.Card, recycled bool) {
	h.publish(Event{Type: "card_revealed", ChatID: chatID, Data: map[string]interface{}{
		"player":   player,
		"card":     card,
		"recycled": recycled,
	}})
}

func (h *EventHub) VoteOpened(chatID int64, player models.Player) {
	h.publish(Event{Type: "vote_opened", ChatID: chatID, Data: map[string]interface{}{
		"player": player,
	}})
}

func (h *EventHub) VoteTallyChanged(chatID int64, tally game.VoteTally) {
	h.publish(Event{Type: "vote_tally", ChatID: chatID, Data: map[string]interface{}{
		"tally": tally,
	}})
}

func (h *EventHub) VoteClosed(chatID int64, tally game.VoteTally) {
	h.publish(Event{Type: "vote_closed", ChatID: chatID, Data: map[string]interface{}{
		"tally": tally,
	}})
}

func (h *EventHub) TurnResolved(chatID int64, player models.Player, success bool, scoreDelta int, reason string) {
	h.publish(Event{Type: "turn_resolved", ChatID: chatID, Data: map[string]interface{}{
		"player":     player,
		"success":    success,
		"scoreDelta": scoreDelta,
		"reason":     reason,
	}})
}

func (h *EventHub) SessionEnded(chatID int64, sessionID string, reason game.EndReason, scoreboard []game.ScoreboardEntry, roundsPlayed int) {
	h.publish(Event{Type: "session_ended", ChatID: chatID, Data: map[string]interface{}{
		"sessionId":    sessionID,
		"reason":       string(reason),
		"scoreboard":   scoreboard,
		"roundsPlayed": roundsPlayed,
	}})
}

// handleEvents upgrades the connection to a websocket and streams the chat's
// events until the client disconnects or the session's chat goes quiet.
func (gs *GameServer) handleEvents(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(r.PathValue("chat"), 10, 64)
	if err != nil {
		writeBadRequest(w, "chat id must be an integer")
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		Subprotocols:   []string{"events"},
		OriginPatterns: []string{"*"}, // Adjust for production security.
	})
	if err != nil {
		gs.Logger.WithError(err).Warn("websocket accept failed")
		return
	}
	defer c.Close(websocket.StatusInternalError, "handler exit")
	middleware.LogWebSocketConnect(gs.Logger, r.RemoteAddr, r.URL.Path)

	sub := gs.Hub.Subscribe(chatID)
	defer sub.Close()

	ctx := r.Context()

	// Drain reads so close frames are processed; clients never send data.
	go func() {
		for {
			if _, _, err := c.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			middleware.LogWebSocketDisconnect(gs.Logger, r.RemoteAddr, r.URL.Path, ctx.Err())
			c.Close(websocket.StatusNormalClosure, "connection closed")
			return
		case ev := <-sub.C():
			if err := wsjson.Write(ctx, c, ev); err != nil {
				middleware.LogWebSocketDisconnect(gs.Logger, r.RemoteAddr, r.URL.Path, err)
				return
			}
		}
	}
}
