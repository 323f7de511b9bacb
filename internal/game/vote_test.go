// internal/game/vote_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMajority(t *testing.T) {
	cases := []struct {
		name        string
		yes, no     int
		playerCount int
		want        VoteOutcome
	}{
		{"three of five approve", 3, 0, 5, VoteSuccess},
		{"three of five reject", 0, 3, 5, VoteFailure},
		{"two-two split of five stays open", 2, 2, 5, VotePending},
		{"exactly half is not a majority", 2, 0, 4, VotePending},
		{"two of three approve", 2, 1, 3, VoteSuccess},
		{"one of two is only half", 1, 0, 2, VotePending},
		{"zero players never resolves", 5, 0, 0, VotePending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveMajority(tc.yes, tc.no, tc.playerCount))
		})
	}
}

func TestBallotCastMovesVote(t *testing.T) {
	b := NewBallot()
	b.Cast(1, true)
	b.Cast(2, true)
	b.Cast(1, false)

	yes, no := b.Counts()
	assert.Equal(t, 1, yes)
	assert.Equal(t, 1, no)
}

func TestBallotResolveTracksRosterSize(t *testing.T) {
	b := NewBallot()
	b.Cast(1, true)
	b.Cast(2, true)

	// 2 of 3 is a strict majority, 2 of 4 is not.
	assert.Equal(t, VoteSuccess, b.Resolve(3))
	assert.Equal(t, VotePending, b.Resolve(4))
}

func TestBallotDeadlockBreaksWithDecidingVote(t *testing.T) {
	b := NewBallot()
	b.Cast(1, true)
	b.Cast(2, true)
	b.Cast(3, false)
	b.Cast(4, false)
	assert.Equal(t, VotePending, b.Resolve(5))

	b.Cast(5, false)
	assert.Equal(t, VoteFailure, b.Resolve(5))
}
