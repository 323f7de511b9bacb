// internal/game/session.go
package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/okranz/daregame/internal/deck"
	"github.com/okranz/daregame/internal/models"
)

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseLobby      Phase = "lobby"
	PhaseInProgress Phase = "in_progress"
	PhaseEnded      Phase = "ended"
)

// TurnStage is the sub-state of the active turn while the session is in
// progress.
type TurnStage string

const (
	StageNone       TurnStage = "none"
	StageChoice     TurnStage = "awaiting_choice"
	StageResolution TurnStage = "awaiting_resolution"
	StageVoting     TurnStage = "voting"
)

// Turn is the active player's in-flight turn.
type Turn struct {
	PlayerID  int64           `json:"playerId"`
	Kind      models.CardKind `json:"kind,omitempty"`
	CardID    string          `json:"cardId,omitempty"`
	StartedAt time.Time       `json:"startedAt"`
}

// SessionConfig carries everything a new session needs from its environment.
type SessionConfig struct {
	ChatID   int64
	Host     models.Player
	Deck     *deck.Engine
	Settings models.Settings

	// Notifier receives presentation events after each committed transition.
	// Optional; nil means nobody is listening.
	Notifier Notifier

	// Actions receives an audit record for every committed transition.
	// Optional.
	Actions ActionLog

	// OnEnd runs once, outside the session lock, when the session reaches
	// PhaseEnded for any reason. The store uses it to unregister the session.
	OnEnd func(chatID int64, s *Session)

	// TimerUnit scales Settings.TimerSeconds into a wall-clock duration.
	// Defaults to time.Second; tests shrink it to run timers in milliseconds.
	TimerUnit time.Duration

	Logger *logrus.Logger
}

// Session is one chat's game: roster, scores, turn rotation, the active turn
// and its timer. All state is guarded by mu; notifier and action-log calls
// happen strictly after the mutating section releases it.
type Session struct {
	ID     uuid.UUID
	ChatID int64

	mu sync.Mutex

	hostID      int64
	players     []models.Player
	scores      map[int64]int
	currentIdx  int
	usedCardIDs map[string]struct{}
	settings    models.Settings

	phase Phase
	stage TurnStage
	turn  *Turn

	ballot *Ballot
	timer  TurnTimer

	turnNumber   int
	roundsPlayed int

	deck      *deck.Engine
	notifier  Notifier
	actions   ActionLog
	onEnd     func(chatID int64, s *Session)
	timerUnit time.Duration
	log       *logrus.Entry
}

// followUp is a side effect deferred until after the session lock is released.
type followUp func()

// NewSession creates a lobby with the host as its first player.
func NewSession(cfg SessionConfig) *Session {
	id := uuid.New()
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = Notifiers{}
	}
	unit := cfg.TimerUnit
	if unit <= 0 {
		unit = time.Second
	}

	s := &Session{
		ID:          id,
		ChatID:      cfg.ChatID,
		hostID:      cfg.Host.ID,
		players:     []models.Player{cfg.Host},
		scores:      map[int64]int{},
		currentIdx:  -1,
		usedCardIDs: map[string]struct{}{},
		settings:    cfg.Settings.Clone(),
		phase:       PhaseLobby,
		stage:       StageNone,
		deck:        cfg.Deck,
		notifier:    notifier,
		actions:     cfg.Actions,
		onEnd:       cfg.OnEnd,
		timerUnit:   unit,
		log: logger.WithFields(logrus.Fields{
			"chat_id":    cfg.ChatID,
			"session_id": id.String(),
		}),
	}
	if s.settings.ScoringEnabled {
		s.scores[cfg.Host.ID] = 0
	}
	s.record("session_create", map[string]interface{}{"host_id": cfg.Host.ID})
	return s
}

// Join adds a player to the roster. A repeat join refreshes the stored
// display name but still reports ErrAlreadyJoined.
func (s *Session) Join(p models.Player) error {
	s.mu.Lock()
	evs, err := s.joinLocked(p)
	s.mu.Unlock()
	s.dispatch(evs)
	return err
}

func (s *Session) joinLocked(p models.Player) ([]followUp, error) {
	if s.phase == PhaseEnded {
		return nil, ErrNotFound
	}
	if i := s.playerIndexLocked(p.ID); i >= 0 {
		s.players[i].Name = p.Name
		return nil, ErrAlreadyJoined
	}
	s.players = append(s.players, p)
	if s.settings.ScoringEnabled {
		s.scores[p.ID] = 0
	}
	s.record("player_join", map[string]interface{}{"player_id": p.ID})
	s.log.WithField("player_id", p.ID).Info("player joined")
	return []followUp{s.lobbyChangedLocked()}, nil
}

// Leave removes a player. The host cannot leave; they end the game instead.
// If the leaver owned the active turn it resolves as a penalty-free skip and
// the rotation continues with the player who followed them.
func (s *Session) Leave(playerID int64) error {
	s.mu.Lock()
	evs, err := s.leaveLocked(playerID)
	s.mu.Unlock()
	s.dispatch(evs)
	return err
}

func (s *Session) leaveLocked(playerID int64) ([]followUp, error) {
	if s.phase == PhaseEnded {
		return nil, ErrNotFound
	}
	if playerID == s.hostID {
		return nil, ErrHostCannotLeave
	}
	idx := s.playerIndexLocked(playerID)
	if idx < 0 {
		return nil, ErrNotJoined
	}

	ownedTurn := s.turn != nil && s.turn.PlayerID == playerID

	s.players = append(s.players[:idx], s.players[idx+1:]...)
	delete(s.scores, playerID)
	s.record("player_leave", map[string]interface{}{"player_id": playerID})
	s.log.WithField("player_id", playerID).Info("player left")

	evs := []followUp{s.lobbyChangedLocked()}
	if ownedTurn {
		// Land the rotation on whoever followed the leaver.
		s.currentIdx = idx - 1
		evs = append(evs, s.skipLocked(ResolvePlayerLeft)...)
	} else if idx <= s.currentIdx && s.currentIdx >= 0 {
		s.currentIdx--
	}
	return evs, nil
}

// Start moves the lobby into play and opens the first turn. Host only.
func (s *Session) Start(by int64) error {
	s.mu.Lock()
	evs, err := s.startLocked(by)
	s.mu.Unlock()
	s.dispatch(evs)
	return err
}

func (s *Session) startLocked(by int64) ([]followUp, error) {
	if s.phase == PhaseEnded {
		return nil, ErrNotFound
	}
	if by != s.hostID {
		return nil, ErrNotHost
	}
	if s.phase != PhaseLobby {
		return nil, ErrAlreadyStarted
	}
	if len(s.players) < s.settings.MinPlayers {
		return nil, fmt.Errorf("%w: have %d, need %d",
			ErrNotEnoughPlayers, len(s.players), s.settings.MinPlayers)
	}
	s.phase = PhaseInProgress
	s.currentIdx = -1
	s.turnNumber = 0
	s.roundsPlayed = 0
	for id := range s.usedCardIDs {
		delete(s.usedCardIDs, id)
	}
	s.record("game_start", map[string]interface{}{"players": len(s.players)})
	s.log.WithField("players", len(s.players)).Info("game started")
	return s.advanceLocked(), nil
}

// advanceLocked rotates to the next player and opens their choice window.
func (s *Session) advanceLocked() []followUp {
	s.timer.Cancel()
	if len(s.players) == 0 {
		return s.endLocked(EndReasonNoPlayers)
	}
	s.currentIdx = (s.currentIdx + 1) % len(s.players)
	p := s.players[s.currentIdx]
	s.turnNumber++
	s.turn = &Turn{PlayerID: p.ID, StartedAt: time.Now()}
	s.stage = StageChoice
	s.ballot = nil
	s.record("turn_start", map[string]interface{}{
		"player_id": p.ID,
		"turn":      s.turnNumber,
	})

	turn := s.turnNumber
	return []followUp{func() { s.notifier.TurnStarted(s.ChatID, p, turn) }}
}

// ChooseKind is the active player picking truth or dare. The card is drawn,
// the resolution window opens, and the turn timer starts if configured.
func (s *Session) ChooseKind(playerID int64, kind models.CardKind) error {
	s.mu.Lock()
	evs, err := s.chooseKindLocked(playerID, kind)
	s.mu.Unlock()
	s.dispatch(evs)
	return err
}

func (s *Session) chooseKindLocked(playerID int64, kind models.CardKind) ([]followUp, error) {
	if s.phase != PhaseInProgress {
		return nil, ErrNotInProgress
	}
	if s.turn == nil {
		return nil, ErrNoActiveTurn
	}
	if s.turn.PlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	if s.stage != StageChoice {
		return nil, ErrNoChoicePending
	}

	card, recycled := s.deck.SelectCard(deck.Filters{
		Kind:       kind,
		AgeCeiling: s.settings.AgeCeiling,
		Categories: s.settings.ActiveCategories,
	}, s.usedCardIDs)
	if card == nil {
		s.log.WithField("kind", kind).Warn("deck exhausted, ending session")
		s.record("deck_exhausted", map[string]interface{}{"kind": string(kind)})
		return s.endLocked(EndReasonDeckExhausted), ErrDeckExhausted
	}
	s.usedCardIDs[card.ID] = struct{}{}
	s.turn.Kind = kind
	s.turn.CardID = card.ID
	s.stage = StageResolution
	p := s.players[s.currentIdx]
	s.record("card_revealed", map[string]interface{}{
		"player_id": p.ID,
		"card_id":   card.ID,
		"kind":      string(kind),
		"recycled":  recycled,
	})

	if s.settings.TimerSeconds > 0 {
		s.timer.Start(time.Duration(s.settings.TimerSeconds)*s.timerUnit, s.handleTimerExpiry)
	}

	drawn := *card
	return []followUp{func() { s.notifier.CardRevealed(s.ChatID, p, drawn, recycled) }}, nil
}

// handleTimerExpiry runs on the timer goroutine. The epoch check under the
// lock discards expiries that lost a race with Cancel.
func (s *Session) handleTimerExpiry(epoch uint64) {
	s.mu.Lock()
	if !s.timer.Matches(epoch) || s.phase != PhaseInProgress || s.turn == nil {
		s.mu.Unlock()
		return
	}
	s.log.WithField("turn", s.turnNumber).Info("turn timer expired, auto-skipping")
	evs := s.skipLocked(ResolveTimeout)
	s.mu.Unlock()
	s.dispatch(evs)
}

// Skip abandons the active turn. Any joined player may request it; the
// configured penalty applies to the turn owner.
func (s *Session) Skip(by int64) error {
	s.mu.Lock()
	evs, err := s.requestSkipLocked(by)
	s.mu.Unlock()
	s.dispatch(evs)
	return err
}

func (s *Session) requestSkipLocked(by int64) ([]followUp, error) {
	if s.phase != PhaseInProgress {
		return nil, ErrNotInProgress
	}
	if s.playerIndexLocked(by) < 0 {
		return nil, ErrNotJoined
	}
	if s.turn == nil {
		return nil, ErrNoActiveTurn
	}
	return s.skipLocked(ResolveSkipped), nil
}

// skipLocked closes the active turn as unsuccessful and advances. The skip
// penalty applies only on an explicit or timed-out skip, never when the turn
// owner left the game.
func (s *Session) skipLocked(reason string) []followUp {
	s.timer.Cancel()

	var evs []followUp
	if s.ballot != nil {
		tally := s.tallyLocked()
		s.ballot = nil
		evs = append(evs, func() { s.notifier.VoteClosed(s.ChatID, tally) })
	}

	player := models.Player{}
	delta := 0
	if s.turn != nil {
		player.ID = s.turn.PlayerID
		if i := s.playerIndexLocked(s.turn.PlayerID); i >= 0 {
			player = s.players[i]
			if reason != ResolvePlayerLeft && s.settings.ScoringEnabled && s.settings.SkipPenalty != 0 {
				s.scores[player.ID] += s.settings.SkipPenalty
				delta = s.settings.SkipPenalty
			}
		}
	}
	s.roundsPlayed++
	s.turn = nil
	s.stage = StageNone
	s.record("turn_skip", map[string]interface{}{
		"player_id": player.ID,
		"reason":    reason,
		"delta":     delta,
	})

	p, d, r := player, delta, reason
	evs = append(evs, func() { s.notifier.TurnResolved(s.ChatID, p, false, d, r) })
	return append(evs, s.advanceLocked()...)
}

// RequestVote opens a completion vote on the revealed card. Any joined player
// may open it; the turn timer is suspended while the group votes.
func (s *Session) RequestVote(by int64) error {
	s.mu.Lock()
	evs, err := s.requestVoteLocked(by)
	s.mu.Unlock()
	s.dispatch(evs)
	return err
}

func (s *Session) requestVoteLocked(by int64) ([]followUp, error) {
	if s.phase != PhaseInProgress {
		return nil, ErrNotInProgress
	}
	if s.playerIndexLocked(by) < 0 {
		return nil, ErrNotJoined
	}
	if s.turn == nil {
		return nil, ErrNoActiveTurn
	}
	if s.ballot != nil {
		return nil, ErrVoteAlreadyOpen
	}
	if s.stage != StageResolution {
		return nil, ErrNoTaskPending
	}

	s.timer.Cancel()
	s.ballot = NewBallot()
	s.stage = StageVoting
	p := s.players[s.currentIdx]
	s.record("vote_open", map[string]interface{}{
		"player_id": p.ID,
		"opened_by": by,
	})
	return []followUp{func() { s.notifier.VoteOpened(s.ChatID, p) }}, nil
}

// CastVote records a yes/no on the open vote. A repeat cast changes the vote.
// The majority threshold re-evaluates against the live roster size, so the
// vote resolves as soon as either side holds a strict majority.
func (s *Session) CastVote(playerID int64, approve bool) error {
	s.mu.Lock()
	evs, err := s.castVoteLocked(playerID, approve)
	s.mu.Unlock()
	s.dispatch(evs)
	return err
}

func (s *Session) castVoteLocked(playerID int64, approve bool) ([]followUp, error) {
	if s.phase != PhaseInProgress {
		return nil, ErrNotInProgress
	}
	if s.ballot == nil {
		return nil, ErrNoVoteOpen
	}
	if s.playerIndexLocked(playerID) < 0 {
		return nil, ErrNotJoined
	}

	s.ballot.Cast(playerID, approve)
	tally := s.tallyLocked()
	s.record("vote_cast", map[string]interface{}{
		"player_id": playerID,
		"approve":   approve,
		"yes":       tally.Yes,
		"no":        tally.No,
	})

	evs := []followUp{func() { s.notifier.VoteTallyChanged(s.ChatID, tally) }}
	switch s.ballot.Resolve(len(s.players)) {
	case VoteSuccess:
		evs = append(evs, s.finalizeLocked(true, ResolveCompleted)...)
	case VoteFailure:
		evs = append(evs, s.finalizeLocked(false, ResolveRejected)...)
	}
	return evs, nil
}

// HostDecision lets the host settle the turn directly, with or without an
// open vote, so a deadlocked vote never blocks the game.
func (s *Session) HostDecision(by int64, accept bool) error {
	s.mu.Lock()
	evs, err := s.hostDecisionLocked(by, accept)
	s.mu.Unlock()
	s.dispatch(evs)
	return err
}

func (s *Session) hostDecisionLocked(by int64, accept bool) ([]followUp, error) {
	if s.phase != PhaseInProgress {
		return nil, ErrNotInProgress
	}
	if by != s.hostID {
		return nil, ErrNotHost
	}
	if s.turn == nil {
		return nil, ErrNoActiveTurn
	}
	if s.stage != StageResolution && s.stage != StageVoting {
		return nil, ErrNoTaskPending
	}
	reason := ResolveCompleted
	if !accept {
		reason = ResolveRejected
	}
	s.record("host_decision", map[string]interface{}{"accept": accept})
	return s.finalizeLocked(accept, reason), nil
}

// finalizeLocked closes the active turn with a verdict, applies scoring and
// advances the rotation.
func (s *Session) finalizeLocked(success bool, reason string) []followUp {
	s.timer.Cancel()

	var evs []followUp
	if s.ballot != nil {
		tally := s.tallyLocked()
		s.ballot = nil
		evs = append(evs, func() { s.notifier.VoteClosed(s.ChatID, tally) })
	}

	player := s.players[s.currentIdx]
	delta := 0
	if success && s.settings.ScoringEnabled {
		s.scores[player.ID]++
		delta = 1
	}
	s.roundsPlayed++
	s.turn = nil
	s.stage = StageNone
	s.record("turn_resolved", map[string]interface{}{
		"player_id": player.ID,
		"success":   success,
		"delta":     delta,
		"reason":    reason,
	})

	p, d, r := player, delta, reason
	evs = append(evs, func() { s.notifier.TurnResolved(s.ChatID, p, success, d, r) })
	return append(evs, s.advanceLocked()...)
}

// End terminates the session. Host only; idempotent once ended.
func (s *Session) End(by int64) error {
	s.mu.Lock()
	if s.phase == PhaseEnded {
		s.mu.Unlock()
		return nil
	}
	if by != s.hostID {
		s.mu.Unlock()
		return ErrNotHost
	}
	evs := s.endLocked(EndReasonHost)
	s.mu.Unlock()
	s.dispatch(evs)
	return nil
}

// Terminate force-ends the session with the given reason, bypassing the host
// check. The store uses it when a new session replaces this one.
func (s *Session) Terminate(reason EndReason) {
	s.mu.Lock()
	if s.phase == PhaseEnded {
		s.mu.Unlock()
		return
	}
	evs := s.endLocked(reason)
	s.mu.Unlock()
	s.dispatch(evs)
}

func (s *Session) endLocked(reason EndReason) []followUp {
	s.timer.Cancel()

	var evs []followUp
	if s.ballot != nil {
		tally := s.tallyLocked()
		s.ballot = nil
		evs = append(evs, func() { s.notifier.VoteClosed(s.ChatID, tally) })
	}

	s.turn = nil
	s.stage = StageNone
	s.phase = PhaseEnded

	board := s.scoreboardLocked()
	rounds := s.roundsPlayed
	s.record("game_end", map[string]interface{}{
		"reason": string(reason),
		"rounds": rounds,
	})
	s.log.WithFields(logrus.Fields{
		"reason": reason,
		"rounds": rounds,
	}).Info("session ended")

	sessionID := s.ID.String()
	evs = append(evs, func() { s.notifier.SessionEnded(s.ChatID, sessionID, reason, board, rounds) })
	if s.onEnd != nil {
		onEnd := s.onEnd
		s.onEnd = nil
		evs = append(evs, func() { onEnd(s.ChatID, s) })
	}
	return evs
}

// ImportDeck merges a card document into this session's deck. Host only.
// Individual malformed items are skipped; an unparsable document fails whole.
func (s *Session) ImportDeck(by int64, data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseEnded {
		return 0, ErrNotFound
	}
	if by != s.hostID {
		return 0, ErrNotHost
	}
	added, err := s.deck.Import(data)
	if err != nil {
		if errors.Is(err, deck.ErrMalformedDocument) {
			return 0, fmt.Errorf("%w: %v", ErrMalformedImport, err)
		}
		return 0, err
	}
	s.record("deck_import", map[string]interface{}{"added": added})
	s.log.WithField("added", added).Info("deck import accepted")
	return added, nil
}

// UpdateSettings replaces the session settings. Host only. Every field is
// validated against its option set; the whole update is rejected on the
// first bad value.
func (s *Session) UpdateSettings(by int64, next models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseEnded {
		return ErrNotFound
	}
	if by != s.hostID {
		return ErrNotHost
	}
	if err := s.validateSettingsLocked(next); err != nil {
		return err
	}

	scoringWasOn := s.settings.ScoringEnabled
	s.settings = next.Clone()
	if s.settings.ScoringEnabled && !scoringWasOn {
		for _, p := range s.players {
			if _, ok := s.scores[p.ID]; !ok {
				s.scores[p.ID] = 0
			}
		}
	}
	s.record("settings_update", map[string]interface{}{
		"timer_seconds": next.TimerSeconds,
		"scoring":       next.ScoringEnabled,
		"skip_penalty":  next.SkipPenalty,
		"age_ceiling":   string(next.AgeCeiling),
		"categories":    next.ActiveCategories,
		"min_players":   next.MinPlayers,
	})
	return nil
}

func (s *Session) validateSettingsLocked(next models.Settings) error {
	if !models.ValidTimerOption(next.TimerSeconds) {
		return fmt.Errorf("%w: timer %d not in %v", ErrInvalidSetting, next.TimerSeconds, models.TimerOptions)
	}
	if next.SkipPenalty != 0 && next.SkipPenalty != -1 {
		return fmt.Errorf("%w: skip penalty %d", ErrInvalidSetting, next.SkipPenalty)
	}
	if !next.AgeCeiling.Valid() {
		return fmt.Errorf("%w: age ceiling %q", ErrInvalidSetting, next.AgeCeiling)
	}
	if next.MinPlayers < 1 {
		return fmt.Errorf("%w: min players %d", ErrInvalidSetting, next.MinPlayers)
	}
	if len(next.ActiveCategories) == 0 {
		return fmt.Errorf("%w: no active categories", ErrInvalidSetting)
	}
	for _, cat := range next.ActiveCategories {
		if !s.deck.HasCategory(cat) {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidSetting, cat)
		}
	}
	return nil
}

// CurrentPlayer returns the active turn's owner, if a turn is open.
func (s *Session) CurrentPlayer() (models.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.turn == nil || s.currentIdx < 0 || s.currentIdx >= len(s.players) {
		return models.Player{}, false
	}
	return s.players[s.currentIdx], true
}

// CurrentTurn returns a copy of the active turn, if any.
func (s *Session) CurrentTurn() (Turn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.turn == nil {
		return Turn{}, false
	}
	return *s.turn, true
}

// Players returns the roster in join order.
func (s *Session) Players() []models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Player(nil), s.players...)
}

// HostID returns the host's player id.
func (s *Session) HostID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hostID
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Stage returns the active turn's sub-state.
func (s *Session) Stage() TurnStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// RoundsPlayed returns the number of turns closed so far.
func (s *Session) RoundsPlayed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roundsPlayed
}

// SettingsSnapshot returns a copy of the live settings.
func (s *Session) SettingsSnapshot() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

// DeckSize returns the combined catalog plus import card count.
func (s *Session) DeckSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Size()
}

// DeckCategories returns the distinct categories of the session's deck.
func (s *Session) DeckCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Categories()
}

// Scoreboard returns the score table, highest first, join order on ties.
func (s *Session) Scoreboard() []ScoreboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoreboardLocked()
}

// VoteState returns the open vote's tally, if a vote is open.
func (s *Session) VoteState() (VoteTally, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ballot == nil {
		return VoteTally{}, false
	}
	return s.tallyLocked(), true
}

func (s *Session) scoreboardLocked() []ScoreboardEntry {
	out := make([]ScoreboardEntry, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, ScoreboardEntry{
			Player: p,
			Score:  s.scores[p.ID],
			IsHost: p.ID == s.hostID,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func (s *Session) tallyLocked() VoteTally {
	yes, no := s.ballot.Counts()
	return VoteTally{Yes: yes, No: no, Players: len(s.players)}
}

func (s *Session) lobbyChangedLocked() followUp {
	host := s.hostID
	players := append([]models.Player(nil), s.players...)
	return func() { s.notifier.LobbyChanged(s.ChatID, host, players) }
}

func (s *Session) playerIndexLocked(playerID int64) int {
	for i, p := range s.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

func (s *Session) record(action string, payload map[string]interface{}) {
	if s.actions == nil {
		return
	}
	s.actions.Record(s.ChatID, s.ID.String(), action, payload)
}

func (s *Session) dispatch(evs []followUp) {
	for _, ev := range evs {
		ev()
	}
}
