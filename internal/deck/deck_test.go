// internal/deck/deck_test.go
package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okranz/daregame/internal/models"
)

func card(id string, kind models.CardKind, category string, age models.AgeRating) models.Card {
	return models.Card{ID: id, Kind: kind, Category: category, Age: age, Text: "prompt " + id}
}

func testEngine(cards ...models.Card) *Engine {
	return NewEngineWithRand(cards, rand.New(rand.NewSource(1)))
}

func defaultFilters(kind models.CardKind) Filters {
	return Filters{Kind: kind, AgeCeiling: models.AgeSixteen, Categories: []string{CategoryLight}}
}

func TestSelectCardNeverRepeatsBeforeRecycle(t *testing.T) {
	e := testEngine(
		card("t1", models.KindTruth, CategoryLight, models.AgeAll),
		card("t2", models.KindTruth, CategoryLight, models.AgeAll),
		card("t3", models.KindTruth, CategoryLight, models.AgeAll),
	)
	used := map[string]struct{}{}

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		c, recycled := e.SelectCard(defaultFilters(models.KindTruth), used)
		require.NotNil(t, c)
		assert.False(t, recycled, "draw %d should not recycle", i)
		assert.False(t, seen[c.ID], "card %s drawn twice before exhaustion", c.ID)
		seen[c.ID] = true
		used[c.ID] = struct{}{}
	}
	assert.Len(t, seen, 3)
}

func TestSelectCardRecyclesOnExhaustion(t *testing.T) {
	e := testEngine(
		card("t1", models.KindTruth, CategoryLight, models.AgeAll),
		card("t2", models.KindTruth, CategoryLight, models.AgeAll),
	)
	used := map[string]struct{}{"t1": {}, "t2": {}}

	c, recycled := e.SelectCard(defaultFilters(models.KindTruth), used)
	require.NotNil(t, c)
	assert.True(t, recycled)
	assert.Empty(t, used, "recycle must clear the used set")
}

func TestSelectCardRespectsAgeCeiling(t *testing.T) {
	e := testEngine(
		card("mild", models.KindDare, CategoryLight, models.AgeAll),
		card("spicy", models.KindDare, CategoryLight, models.AgeEighteen),
	)
	used := map[string]struct{}{}

	for i := 0; i < 10; i++ {
		c, _ := e.SelectCard(defaultFilters(models.KindDare), used)
		require.NotNil(t, c)
		assert.Equal(t, "mild", c.ID)
	}
}

func TestSelectCardRespectsCategories(t *testing.T) {
	e := testEngine(
		card("l1", models.KindTruth, CategoryLight, models.AgeAll),
		card("r1", models.KindTruth, CategoryRomance, models.AgeAll),
	)
	used := map[string]struct{}{}

	f := Filters{Kind: models.KindTruth, AgeCeiling: models.AgeEighteen, Categories: []string{CategoryRomance}}
	for i := 0; i < 10; i++ {
		c, _ := e.SelectCard(f, used)
		require.NotNil(t, c)
		assert.Equal(t, "r1", c.ID)
	}
}

func TestSelectCardNoMatch(t *testing.T) {
	e := testEngine(card("t1", models.KindTruth, CategoryLight, models.AgeAll))
	used := map[string]struct{}{}

	c, recycled := e.SelectCard(defaultFilters(models.KindDare), used)
	assert.Nil(t, c)
	assert.False(t, recycled)
}

func TestImportSkipsBadItems(t *testing.T) {
	e := testEngine()
	doc := []byte(`{
		"meta": {"name": "party pack"},
		"items": [
			{"id": "x1", "type": "truth", "category": "Light", "age": "0+", "text": "ok"},
			{"id": "", "type": "truth", "category": "Light", "age": "0+", "text": "no id"},
			{"id": "x2", "type": "question", "category": "Light", "age": "0+", "text": "bad kind"},
			{"id": "x3", "type": "dare", "category": "Light", "age": "21+", "text": "bad age"},
			{"id": "x4", "type": "dare", "category": "Light", "age": "0+", "text": ""}
		]
	}`)

	added, err := e.Import(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, e.Size())
}

func TestImportMalformedDocument(t *testing.T) {
	e := testEngine()
	_, err := e.Import([]byte(`{"items": "nope"`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.Zero(t, e.Size())
}

func TestImportedCardsAreDrawable(t *testing.T) {
	e := testEngine()
	_, err := e.Import([]byte(`{"items": [
		{"id": "imp-1", "type": "dare", "category": "Custom", "age": "12+", "text": "do the thing"}
	]}`))
	require.NoError(t, err)

	f := Filters{Kind: models.KindDare, AgeCeiling: models.AgeSixteen, Categories: []string{"Custom"}}
	c, _ := e.SelectCard(f, map[string]struct{}{})
	require.NotNil(t, c)
	assert.Equal(t, "imp-1", c.ID)
	assert.True(t, e.HasCategory("Custom"))
}

func TestCategoriesSortedDistinct(t *testing.T) {
	e := testEngine(
		card("a", models.KindTruth, CategoryRomance, models.AgeAll),
		card("b", models.KindTruth, CategoryLight, models.AgeAll),
		card("c", models.KindDare, CategoryLight, models.AgeAll),
	)
	assert.Equal(t, []string{CategoryLight, CategoryRomance}, e.Categories())
}

func TestDefaultCatalogCoversEveryKindAndCategory(t *testing.T) {
	e := NewEngine(DefaultCatalog())
	for _, cat := range []string{CategoryLight, CategoryFriends, CategoryRomance, CategoryExtreme} {
		assert.True(t, e.HasCategory(cat), "catalog missing category %s", cat)
		for _, kind := range []models.CardKind{models.KindTruth, models.KindDare} {
			f := Filters{Kind: kind, AgeCeiling: models.AgeEighteen, Categories: []string{cat}}
			c, _ := e.SelectCard(f, map[string]struct{}{})
			assert.NotNil(t, c, "no %s card in category %s", kind, cat)
		}
	}
}
