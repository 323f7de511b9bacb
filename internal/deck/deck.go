// internal/deck/deck.go
package deck

import (
	"math/rand"
	"sort"
	"time"

	"github.com/okranz/daregame/internal/models"
)

// Engine selects cards for one session: the shared catalog plus that
// session's imported cards. It is not safe for concurrent use on its own;
// the owning session serializes access.
type Engine struct {
	catalog []models.Card
	imports []models.Card
	rng     *rand.Rand
}

// NewEngine builds an engine over the given catalog with a time-seeded RNG.
func NewEngine(catalog []models.Card) *Engine {
	return &Engine{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewEngineWithRand builds an engine with a caller-supplied RNG, used by
// tests that need deterministic draws.
func NewEngineWithRand(catalog []models.Card, rng *rand.Rand) *Engine {
	return &Engine{catalog: catalog, rng: rng}
}

// Filters narrows the candidate set for a draw.
type Filters struct {
	Kind       models.CardKind
	AgeCeiling models.AgeRating
	Categories []string
}

func (f Filters) matches(c models.Card) bool {
	if c.Kind != f.Kind {
		return false
	}
	if !c.Age.AllowedBy(f.AgeCeiling) {
		return false
	}
	for _, cat := range f.Categories {
		if c.Category == cat {
			return true
		}
	}
	return false
}

// SelectCard draws a uniformly random unused card matching the filters.
// When every matching card has been used it clears the used set and redraws
// from the full filtered deck, returning recycled=true so the caller can
// announce the reshuffle. Returns nil when no card matches the filters at
// all; the caller must treat that as fatal for the current turn.
//
// The used set is mutated in place: a recycle clears it entirely. The caller
// records the drawn id itself after a successful draw.
func (e *Engine) SelectCard(f Filters, used map[string]struct{}) (*models.Card, bool) {
	candidates := e.candidates(f, used)
	if len(candidates) > 0 {
		card := candidates[e.rng.Intn(len(candidates))]
		return &card, false
	}

	// Exhausted under this filter set: one reshuffle attempt, never more.
	for id := range used {
		delete(used, id)
	}
	candidates = e.candidates(f, nil)
	if len(candidates) == 0 {
		return nil, false
	}
	card := candidates[e.rng.Intn(len(candidates))]
	return &card, true
}

func (e *Engine) candidates(f Filters, used map[string]struct{}) []models.Card {
	var out []models.Card
	for _, pool := range [][]models.Card{e.catalog, e.imports} {
		for _, c := range pool {
			if _, seen := used[c.ID]; seen {
				continue
			}
			if f.matches(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// Categories returns the distinct category names across the catalog and the
// session's imports, sorted for stable presentation.
func (e *Engine) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, pool := range [][]models.Card{e.catalog, e.imports} {
		for _, c := range pool {
			if _, ok := seen[c.Category]; ok {
				continue
			}
			seen[c.Category] = struct{}{}
			out = append(out, c.Category)
		}
	}
	sort.Strings(out)
	return out
}

// HasCategory reports whether any card in the combined deck carries the
// category.
func (e *Engine) HasCategory(category string) bool {
	for _, pool := range [][]models.Card{e.catalog, e.imports} {
		for _, c := range pool {
			if c.Category == category {
				return true
			}
		}
	}
	return false
}

// Size returns the number of cards in the combined deck.
func (e *Engine) Size() int {
	return len(e.catalog) + len(e.imports)
}
