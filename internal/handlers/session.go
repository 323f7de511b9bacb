// internal/handlers/session.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/okranz/daregame/internal/game"
	"github.com/okranz/daregame/internal/models"
)

// sessionSnapshot is the full read model of one session, returned from the
// create and get endpoints.
type sessionSnapshot struct {
	SessionID    string                 `json:"sessionId"`
	ChatID       int64                  `json:"chatId"`
	Phase        game.Phase             `json:"phase"`
	Stage        game.TurnStage         `json:"stage"`
	HostID       int64                  `json:"hostId"`
	Players      []models.Player        `json:"players"`
	Settings     models.Settings        `json:"settings"`
	Turn         *game.Turn             `json:"turn,omitempty"`
	Vote         *game.VoteTally        `json:"vote,omitempty"`
	Scoreboard   []game.ScoreboardEntry `json:"scoreboard"`
	RoundsPlayed int                    `json:"roundsPlayed"`
}

func snapshotOf(s *game.Session) sessionSnapshot {
	snap := sessionSnapshot{
		SessionID:    s.ID.String(),
		ChatID:       s.ChatID,
		Phase:        s.Phase(),
		Stage:        s.Stage(),
		HostID:       s.HostID(),
		Players:      s.Players(),
		Settings:     s.SettingsSnapshot(),
		Scoreboard:   s.Scoreboard(),
		RoundsPlayed: s.RoundsPlayed(),
	}
	if turn, ok := s.CurrentTurn(); ok {
		snap.Turn = &turn
	}
	if tally, ok := s.VoteState(); ok {
		snap.Vote = &tally
	}
	return snap
}

func chatIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("chat"), 10, 64)
	return id, err == nil
}

func (gs *GameServer) session(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	chatID, ok := chatIDFromPath(r)
	if !ok {
		writeBadRequest(w, "chat id must be an integer")
		return nil, false
	}
	s, ok := gs.Store.Get(chatID)
	if !ok {
		writeGameError(w, game.ErrNotFound)
		return nil, false
	}
	return s, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return false
	}
	return true
}

// handleCreateSession opens a fresh lobby for a chat. An existing session for
// the same chat is terminated and replaced, so a chat never holds two games.
func (gs *GameServer) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatID   int64            `json:"chatId"`
		Host     models.Player    `json:"host"`
		Settings *models.Settings `json:"settings,omitempty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Host.ID == 0 {
		writeBadRequest(w, "host id is required")
		return
	}

	s := gs.newSession(req.ChatID, req.Host, models.DefaultSettings())
	if req.Settings != nil {
		// Custom settings go through the same validation as a live update.
		if err := s.UpdateSettings(req.Host.ID, *req.Settings); err != nil {
			s.Terminate(game.EndReasonHost)
			writeGameError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, snapshotOf(s))
}

func (gs *GameServer) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"size":       s.DeckSize(),
		"categories": s.DeckCategories(),
	})
}

func (gs *GameServer) handleJoin(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Player models.Player `json:"player"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.Join(req.Player); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleLeave(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64 `json:"playerId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.Leave(req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleStart(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64 `json:"playerId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.Start(req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleChoose(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64  `json:"playerId"`
		Kind     string `json:"kind"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	kind, ok := models.ParseKind(req.Kind)
	if !ok {
		writeBadRequest(w, "kind must be truth or dare")
		return
	}
	if err := s.ChooseKind(req.PlayerID, kind); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleSkip(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64 `json:"playerId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.Skip(req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleVoteOpen(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64 `json:"playerId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.RequestVote(req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleVoteCast(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64 `json:"playerId"`
		Approve  bool  `json:"approve"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.CastVote(req.PlayerID, req.Approve); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleDecision(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64 `json:"playerId"`
		Accept   bool  `json:"accept"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.HostDecision(req.PlayerID, req.Accept); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleSettings(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64           `json:"playerId"`
		Settings models.Settings `json:"settings"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.UpdateSettings(req.PlayerID, req.Settings); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}

func (gs *GameServer) handleImport(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64           `json:"playerId"`
		Document json.RawMessage `json:"document"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	added, err := s.ImportDeck(req.PlayerID, req.Document)
	if err != nil {
		writeGameError(w, err)
		return
	}
	gs.archiveImport(s, added)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"added":    added,
		"deckSize": s.DeckSize(),
	})
}

func (gs *GameServer) handleEnd(w http.ResponseWriter, r *http.Request) {
	s, ok := gs.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PlayerID int64 `json:"playerId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.End(req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotOf(s))
}
