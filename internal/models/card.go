package models

// CardKind is the choice a player makes on their turn.
type CardKind string

const (
	KindTruth CardKind = "truth"
	KindDare  CardKind = "dare"
)

// ParseKind returns the kind for a wire string, or false if it isn't one.
func ParseKind(s string) (CardKind, bool) {
	switch CardKind(s) {
	case KindTruth, KindDare:
		return CardKind(s), true
	}
	return "", false
}

// AgeRating is an ordered age tier. Ratings compare by rank, not string.
type AgeRating string

const (
	AgeAll      AgeRating = "0+"
	AgeTwelve   AgeRating = "12+"
	AgeSixteen  AgeRating = "16+"
	AgeEighteen AgeRating = "18+"
)

var ageRanks = map[AgeRating]int{
	AgeAll:      0,
	AgeTwelve:   1,
	AgeSixteen:  2,
	AgeEighteen: 3,
}

// AgeRatings lists all known ratings from mildest to strongest.
func AgeRatings() []AgeRating {
	return []AgeRating{AgeAll, AgeTwelve, AgeSixteen, AgeEighteen}
}

// Valid reports whether the rating is one of the known tiers.
func (a AgeRating) Valid() bool {
	_, ok := ageRanks[a]
	return ok
}

// Rank returns the ordering position of the rating. Unknown ratings rank
// above every known tier so they never slip past a ceiling check.
func (a AgeRating) Rank() int {
	if r, ok := ageRanks[a]; ok {
		return r
	}
	return len(ageRanks)
}

// AllowedBy reports whether a card with this rating may be drawn under the
// given ceiling.
func (a AgeRating) AllowedBy(ceiling AgeRating) bool {
	return a.Rank() <= ceiling.Rank()
}

// Card is a single truth or dare prompt. Cards are immutable once created;
// they live either in the shared catalog or in a session's import list.
type Card struct {
	ID       string    `json:"id"`
	Kind     CardKind  `json:"type"`
	Category string    `json:"category"`
	Age      AgeRating `json:"age"`
	Tags     []string  `json:"tags,omitempty"`
	Text     string    `json:"text"`
}
