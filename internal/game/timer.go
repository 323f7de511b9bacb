// internal/game/timer.go
package game

import "time"

// TurnTimer is a single-shot cancelable countdown bound to one session.
//
// All methods must be called with the owning session's lock held. The fire
// callback runs on the timer goroutine WITHOUT the lock; it must re-acquire
// the lock and check Matches with the epoch it was handed before acting.
// Cancel bumps the epoch, so exactly one of "the expiry acts" or "cancel
// suppressed it" happens, never both and never neither.
type TurnTimer struct {
	timer *time.Timer
	epoch uint64
	armed bool
}

// Start schedules fire after d, replacing any pending countdown. A duration
// of zero or less disables the timer entirely.
func (t *TurnTimer) Start(d time.Duration, fire func(epoch uint64)) {
	t.Cancel()
	if d <= 0 {
		return
	}
	t.epoch++
	t.armed = true
	epoch := t.epoch
	t.timer = time.AfterFunc(d, func() {
		fire(epoch)
	})
}

// Cancel stops any pending countdown. Idempotent; safe when nothing is
// scheduled. An expiry already racing through AfterFunc will see a stale
// epoch and do nothing.
func (t *TurnTimer) Cancel() {
	t.epoch++
	t.armed = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Matches reports whether an expiry with the given epoch is still current.
func (t *TurnTimer) Matches(epoch uint64) bool {
	return t.armed && t.epoch == epoch
}

// Armed reports whether a countdown is outstanding.
func (t *TurnTimer) Armed() bool {
	return t.armed
}
