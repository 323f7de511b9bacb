// internal/handlers/session_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okranz/daregame/internal/game"
	"github.com/okranz/daregame/internal/models"
)

func newTestServer(t *testing.T) (*GameServer, http.Handler) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))
	gs := NewGameServer(logger)
	gs.TimerUnit = time.Millisecond
	return gs, gs.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) sessionSnapshot {
	t.Helper()
	var snap sessionSnapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snap))
	return snap
}

func createSession(t *testing.T, h http.Handler, chatID int64) sessionSnapshot {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/sessions", map[string]interface{}{
		"chatId": chatID,
		"host":   models.Player{ID: 1, Name: "Hanna"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeSnapshot(t, rec)
}

func TestCreateAndGetSession(t *testing.T) {
	_, h := newTestServer(t)

	snap := createSession(t, h, 42)
	assert.Equal(t, int64(42), snap.ChatID)
	assert.Equal(t, int64(1), snap.HostID)
	require.Len(t, snap.Players, 1)
	assert.Equal(t, 30, snap.Settings.TimerSeconds)

	rec := doJSON(t, h, http.MethodGet, "/sessions/42", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeSnapshot(t, rec)
	assert.Equal(t, snap.SessionID, got.SessionID)
}

func TestGetUnknownSession(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/sessions/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Code)
}

func TestCreateReplacesExistingSession(t *testing.T) {
	gs, h := newTestServer(t)

	first := createSession(t, h, 42)
	second := createSession(t, h, 42)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	s, ok := gs.Store.Get(42)
	require.True(t, ok)
	assert.Equal(t, second.SessionID, s.ID.String())
	assert.Equal(t, 1, gs.Store.Len())
}

func TestFullGameOverHTTP(t *testing.T) {
	_, h := newTestServer(t)
	createSession(t, h, 42)

	rec := doJSON(t, h, http.MethodPost, "/sessions/42/join", map[string]interface{}{
		"player": models.Player{ID: 2, Name: "Artem"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, h, http.MethodPost, "/sessions/42/join", map[string]interface{}{
		"player": models.Player{ID: 3, Name: "Bea"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/sessions/42/start", map[string]interface{}{"playerId": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decodeSnapshot(t, rec)
	require.NotNil(t, snap.Turn)
	assert.Equal(t, int64(1), snap.Turn.PlayerID)

	// Timer is disabled for the rest of the game to keep the test stable.
	settings := snap.Settings.Clone()
	settings.TimerSeconds = 0
	rec = doJSON(t, h, http.MethodPost, "/sessions/42/settings", map[string]interface{}{
		"playerId": 1,
		"settings": settings,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/sessions/42/choose", map[string]interface{}{
		"playerId": 1,
		"kind":     "truth",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	snap = decodeSnapshot(t, rec)
	require.NotNil(t, snap.Turn)
	assert.NotEmpty(t, snap.Turn.CardID)

	rec = doJSON(t, h, http.MethodPost, "/sessions/42/vote/open", map[string]interface{}{"playerId": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/sessions/42/vote", map[string]interface{}{"playerId": 2, "approve": true})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, h, http.MethodPost, "/sessions/42/vote", map[string]interface{}{"playerId": 3, "approve": true})
	require.Equal(t, http.StatusOK, rec.Code)
	snap = decodeSnapshot(t, rec)
	require.NotNil(t, snap.Turn)
	assert.Equal(t, int64(2), snap.Turn.PlayerID, "majority approval advances the rotation")
	assert.Equal(t, int64(1), snap.Scoreboard[0].Player.ID)
	assert.Equal(t, 1, snap.Scoreboard[0].Score)

	rec = doJSON(t, h, http.MethodPost, "/sessions/42/end", map[string]interface{}{"playerId": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	snap = decodeSnapshot(t, rec)
	assert.Equal(t, "ended", string(snap.Phase))
}

func TestErrorStatusMapping(t *testing.T) {
	_, h := newTestServer(t)
	createSession(t, h, 42)

	// Non-host start.
	rec := doJSON(t, h, http.MethodPost, "/sessions/42/start", map[string]interface{}{"playerId": 9})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Under quorum.
	rec = doJSON(t, h, http.MethodPost, "/sessions/42/start", map[string]interface{}{"playerId": 1})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Invalid setting.
	settings := models.DefaultSettings()
	settings.TimerSeconds = 7
	rec = doJSON(t, h, http.MethodPost, "/sessions/42/settings", map[string]interface{}{
		"playerId": 1,
		"settings": settings,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Bad kind.
	rec = doJSON(t, h, http.MethodPost, "/sessions/42/choose", map[string]interface{}{
		"playerId": 1,
		"kind":     "question",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportEndpoint(t *testing.T) {
	_, h := newTestServer(t)
	createSession(t, h, 42)

	doc := map[string]interface{}{
		"playerId": 1,
		"document": map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": "imp-1", "type": "dare", "category": "Light", "age": "0+", "text": "imported dare"},
				{"id": "", "type": "dare", "category": "Light", "age": "0+", "text": "skipped"},
			},
		},
	}
	rec := doJSON(t, h, http.MethodPost, "/sessions/42/import", doc)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Added    int `json:"added"`
		DeckSize int `json:"deckSize"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 1, body.Added)

	rec = doJSON(t, h, http.MethodGet, "/sessions/42/deck", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEventHubFanout(t *testing.T) {
	hub := NewEventHub(logrus.New())

	sub := hub.Subscribe(42)
	defer sub.Close()
	other := hub.Subscribe(7)
	defer other.Close()

	hub.TurnStarted(42, models.Player{ID: 1, Name: "Hanna"}, 3)

	select {
	case ev := <-sub.C():
		assert.Equal(t, "turn_started", ev.Type)
		assert.Equal(t, int64(42), ev.ChatID)
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}

	select {
	case ev := <-other.C():
		t.Fatalf("chat 7 subscriber received foreign event %v", ev)
	default:
	}
}

func TestEventHubDropsWhenSubscriberStalls(t *testing.T) {
	hub := NewEventHub(logrus.New())
	sub := hub.Subscribe(42)
	defer sub.Close()

	for i := 0; i < subscriberBuffer+10; i++ {
		hub.VoteTallyChanged(42, game.VoteTally{Yes: i, Players: 5})
	}

	received := 0
	for {
		select {
		case <-sub.C():
			received++
		default:
			assert.Equal(t, subscriberBuffer, received, "overflow must drop, not block")
			return
		}
	}
}
