// internal/models/settings.go
package models

// TimerOptions are the selectable per-turn countdown durations in seconds.
// 0 disables the timer.
var TimerOptions = []int{0, 20, 30, 45, 60}

// ValidTimerOption reports whether seconds is one of TimerOptions.
func ValidTimerOption(seconds int) bool {
	for _, t := range TimerOptions {
		if t == seconds {
			return true
		}
	}
	return false
}

// Settings captures the host-tunable configuration of one session. Every
// field has a fixed enumerated option set; unknown values are rejected at the
// boundary rather than silently defaulted.
type Settings struct {
	// TimerSeconds is the per-turn countdown. Must be one of TimerOptions.
	TimerSeconds int `json:"timerSeconds"`

	// ScoringEnabled toggles score bookkeeping entirely.
	ScoringEnabled bool `json:"scoringEnabled"`

	// SkipPenalty is applied to the active player's score on a skipped turn.
	// Allowed values: 0 or -1.
	SkipPenalty int `json:"skipPenalty"`

	// AgeCeiling filters the deck to cards rated at or below this tier.
	AgeCeiling AgeRating `json:"ageCeiling"`

	// ActiveCategories is the non-empty set of card categories in play.
	ActiveCategories []string `json:"activeCategories"`

	// MinPlayers is the roster size required to start. At least 1.
	MinPlayers int `json:"minPlayers"`
}

// DefaultSettings mirrors the stock game setup: 30 second turns, scoring on,
// no skip penalty, 16+ ceiling, the Light category, two players to start.
func DefaultSettings() Settings {
	return Settings{
		TimerSeconds:     30,
		ScoringEnabled:   true,
		SkipPenalty:      0,
		AgeCeiling:       AgeSixteen,
		ActiveCategories: []string{"Light"},
		MinPlayers:       2,
	}
}

// HasCategory reports whether the category is active.
func (s Settings) HasCategory(category string) bool {
	for _, c := range s.ActiveCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slice storage with the receiver.
func (s Settings) Clone() Settings {
	out := s
	out.ActiveCategories = append([]string(nil), s.ActiveCategories...)
	return out
}
