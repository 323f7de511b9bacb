// internal/game/timer_test.go
package game

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTurnTimerFires(t *testing.T) {
	var tt TurnTimer
	fired := make(chan uint64, 1)

	tt.Start(20*time.Millisecond, func(epoch uint64) { fired <- epoch })
	select {
	case epoch := <-fired:
		assert.True(t, tt.Matches(epoch))
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
}

func TestTurnTimerCancelSuppressesExpiry(t *testing.T) {
	var tt TurnTimer
	var fired atomic.Int32

	tt.Start(20*time.Millisecond, func(epoch uint64) {
		if tt.Matches(epoch) {
			fired.Add(1)
		}
	})
	tt.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.Load())
	assert.False(t, tt.Armed())
}

func TestTurnTimerRestartInvalidatesOldEpoch(t *testing.T) {
	var tt TurnTimer
	epochs := make(chan uint64, 2)

	tt.Start(20*time.Millisecond, func(epoch uint64) { epochs <- epoch })
	tt.Start(30*time.Millisecond, func(epoch uint64) { epochs <- epoch })

	select {
	case epoch := <-epochs:
		assert.True(t, tt.Matches(epoch), "only the second countdown's epoch may be current")
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
}

func TestTurnTimerZeroDurationDisables(t *testing.T) {
	var tt TurnTimer
	tt.Start(0, func(uint64) { t.Error("disabled timer must not fire") })
	assert.False(t, tt.Armed())
	time.Sleep(20 * time.Millisecond)
}
