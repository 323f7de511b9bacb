// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/okranz/daregame/internal/game"
)

// errorStatus maps machine-readable game error codes to HTTP statuses.
var errorStatus = map[string]int{
	"not_found":          http.StatusNotFound,
	"not_host":           http.StatusForbidden,
	"not_your_turn":      http.StatusForbidden,
	"host_cannot_leave":  http.StatusForbidden,
	"already_joined":     http.StatusConflict,
	"already_started":    http.StatusConflict,
	"vote_already_open":  http.StatusConflict,
	"not_joined":         http.StatusConflict,
	"not_enough_players": http.StatusConflict,
	"not_in_progress":    http.StatusConflict,
	"no_active_turn":     http.StatusConflict,
	"no_choice_pending":  http.StatusConflict,
	"no_task_pending":    http.StatusConflict,
	"no_vote_open":       http.StatusConflict,
	"no_players":         http.StatusConflict,
	"deck_exhausted":     http.StatusConflict,
	"invalid_setting":    http.StatusBadRequest,
	"malformed_import":   http.StatusBadRequest,
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeGameError(w http.ResponseWriter, err error) {
	code := game.Code(err)
	status, ok := errorStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, errorBody{Code: code, Message: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Code: "bad_request", Message: msg})
}
