// internal/game/vote.go
package game

// VoteOutcome is the resolution state of a completion vote.
type VoteOutcome int

const (
	VotePending VoteOutcome = iota
	VoteSuccess
	VoteFailure
)

// Ballot tracks who voted which way on the current turn's completion.
// A player appears in at most one of the two sets; casting again moves them.
type Ballot struct {
	yes map[int64]struct{}
	no  map[int64]struct{}
}

// NewBallot returns an empty ballot.
func NewBallot() *Ballot {
	return &Ballot{
		yes: make(map[int64]struct{}),
		no:  make(map[int64]struct{}),
	}
}

// Cast records a vote, replacing the player's previous vote if any.
func (b *Ballot) Cast(playerID int64, approve bool) {
	if approve {
		delete(b.no, playerID)
		b.yes[playerID] = struct{}{}
	} else {
		delete(b.yes, playerID)
		b.no[playerID] = struct{}{}
	}
}

// Counts returns the current yes and no tallies.
func (b *Ballot) Counts() (yes, no int) {
	return len(b.yes), len(b.no)
}

// ResolveMajority is the single place the majority rule lives. A side wins
// when it holds strictly more than half of the current player count; the
// count is re-evaluated on every cast, so late joiners raise the bar. With
// zero players nothing ever resolves (host decision or skip required).
func ResolveMajority(yes, no, playerCount int) VoteOutcome {
	if playerCount <= 0 {
		return VotePending
	}
	need := playerCount / 2 // floor; strict > required
	switch {
	case yes > need:
		return VoteSuccess
	case no > need:
		return VoteFailure
	default:
		return VotePending
	}
}

// Resolve evaluates the ballot against the live player count.
func (b *Ballot) Resolve(playerCount int) VoteOutcome {
	yes, no := b.Counts()
	return ResolveMajority(yes, no, playerCount)
}
