// internal/deck/catalog.go
package deck

import "github.com/okranz/daregame/internal/models"

// Category names of the stock catalog.
const (
	CategoryLight   = "Light"
	CategoryFriends = "Friends"
	CategoryRomance = "Romance"
	CategoryExtreme = "Extreme"
)

// DefaultCatalog returns the built-in deck: four categories, truths and dares
// per category, age tiers from 0+ to 18+. The returned slice is a fresh copy
// on every call, so callers may extend it freely.
func DefaultCatalog() []models.Card {
	cards := []models.Card{
		// Light truths
		{ID: "light-t-01", Kind: models.KindTruth, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"fun"}, Text: "What meme is your current favorite?"},
		{ID: "light-t-02", Kind: models.KindTruth, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"social"}, Text: "Which skill would you learn instantly if you could?"},
		{ID: "light-t-03", Kind: models.KindTruth, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"fun"}, Text: "What's the strangest food you've ever tried?"},
		{ID: "light-t-04", Kind: models.KindTruth, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"creative"}, Text: "If you had a personal slogan, what would it be?"},
		{ID: "light-t-05", Kind: models.KindTruth, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"social"}, Text: "What genuinely surprised you recently?"},
		{ID: "light-t-06", Kind: models.KindTruth, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"social"}, Text: "What are you clearly good at but rarely mention?"},

		// Light dares
		{ID: "light-d-01", Kind: models.KindDare, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"fun"}, Text: "Imitate the laugh of three different movie villains."},
		{ID: "light-d-02", Kind: models.KindDare, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"active"}, Text: "Do 10 mini squats while counting in a made-up language."},
		{ID: "light-d-03", Kind: models.KindDare, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"creative"}, Text: "Voice-act any object in the room for 15 seconds."},
		{ID: "light-d-04", Kind: models.KindDare, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"social"}, Text: "Give an unexpectedly warm compliment to two players."},
		{ID: "light-d-05", Kind: models.KindDare, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"fun"}, Text: "Hold your most serious face for 10 seconds without laughing."},
		{ID: "light-d-06", Kind: models.KindDare, Category: CategoryLight, Age: models.AgeAll, Tags: []string{"creative"}, Text: "Narrate everything around you like a sports commentator for 20 seconds."},

		// Friends truths
		{ID: "friends-t-01", Kind: models.KindTruth, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"social"}, Text: "Who in this group makes you laugh the most, and why?"},
		{ID: "friends-t-02", Kind: models.KindTruth, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"social"}, Text: "Which shared ritual of this group do you love?"},
		{ID: "friends-t-03", Kind: models.KindTruth, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"social"}, Text: "How do you usually settle arguments with friends?"},
		{ID: "friends-t-04", Kind: models.KindTruth, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"social"}, Text: "What makes you proud of one of the players here?"},
		{ID: "friends-t-05", Kind: models.KindTruth, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"fun"}, Text: "What's the most ridiculous story this group shares?"},
		{ID: "friends-t-06", Kind: models.KindTruth, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"social"}, Text: "Who here would you trust with an important task, and why?"},

		// Friends dares
		{ID: "friends-d-01", Kind: models.KindDare, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"creative"}, Text: "Act out a mini scene titled \"we lost the keys\", assigning roles."},
		{ID: "friends-d-02", Kind: models.KindDare, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"fun"}, Text: "Impersonate one of your friends until they recognize themselves."},
		{ID: "friends-d-03", Kind: models.KindDare, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"social"}, Text: "Tell every player one thing you value about them."},
		{ID: "friends-d-04", Kind: models.KindDare, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"creative"}, Text: "Invent and announce a motto for this group."},
		{ID: "friends-d-05", Kind: models.KindDare, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"creative"}, Text: "Pick an emoji coat of arms for every player."},
		{ID: "friends-d-06", Kind: models.KindDare, Category: CategoryFriends, Age: models.AgeAll, Tags: []string{"fun"}, Text: "Tell a short joke without laughing yourself."},

		// Romance truths
		{ID: "romance-t-01", Kind: models.KindTruth, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "What small detail makes a date great?"},
		{ID: "romance-t-02", Kind: models.KindTruth, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "How do you show people that you care?"},
		{ID: "romance-t-03", Kind: models.KindTruth, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"creative"}, Text: "What's your idea of the sweetest surprise?"},
		{ID: "romance-t-04", Kind: models.KindTruth, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "Which film or song carries warm memories for you?"},
		{ID: "romance-t-05", Kind: models.KindTruth, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "What's your love language: attention, time, gifts, words, or help?"},
		{ID: "romance-t-06", Kind: models.KindTruth, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "Which quality do you value most in a partner?"},

		// Romance dares
		{ID: "romance-d-01", Kind: models.KindDare, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "Give a warm compliment to any player."},
		{ID: "romance-d-02", Kind: models.KindDare, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"creative"}, Text: "Read a short thank-you letter out loud, two or three sentences."},
		{ID: "romance-d-03", Kind: models.KindDare, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "Recommend a film or song for a cozy evening."},
		{ID: "romance-d-04", Kind: models.KindDare, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "Name three things you're grateful for today."},
		{ID: "romance-d-05", Kind: models.KindDare, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "Share a fond memory, one minute max."},
		{ID: "romance-d-06", Kind: models.KindDare, Category: CategoryRomance, Age: models.AgeTwelve, Tags: []string{"social"}, Text: "Raise a short toast to good company."},

		// Extreme truths
		{ID: "extreme-t-01", Kind: models.KindTruth, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"social"}, Text: "Which personal challenge have you been putting off for ages?"},
		{ID: "extreme-t-02", Kind: models.KindTruth, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"social"}, Text: "What's the bravest thing you've ever done?"},
		{ID: "extreme-t-03", Kind: models.KindTruth, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"social"}, Text: "Which of your fears are you willing to poke at today?"},
		{ID: "extreme-t-04", Kind: models.KindTruth, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"social"}, Text: "What do you dream about but never told anyone?"},
		{ID: "extreme-t-05", Kind: models.KindTruth, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"social"}, Text: "Which risk did you take and never regret?"},
		{ID: "extreme-t-06", Kind: models.KindTruth, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"fun"}, Text: "What's the most awkward situation you turned into a joke?"},

		// Extreme dares
		{ID: "extreme-d-01", Kind: models.KindDare, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"active"}, Text: "Do 20 squats or 10 push-ups, safely."},
		{ID: "extreme-d-02", Kind: models.KindDare, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"fun"}, Text: "Say a tongue twister three times fast without mistakes."},
		{ID: "extreme-d-03", Kind: models.KindDare, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"creative"}, Text: "Perform a one-minute monologue titled \"if my life were a movie\"."},
		{ID: "extreme-d-04", Kind: models.KindDare, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"active"}, Text: "Hold a plank for 30 seconds, if you're up for it."},
		{ID: "extreme-d-05", Kind: models.KindDare, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"social"}, Text: "Tell a story about a time you pushed past your limits."},
		{ID: "extreme-d-06", Kind: models.KindDare, Category: CategoryExtreme, Age: models.AgeSixteen, Tags: []string{"creative"}, Text: "Invent a fierce name for this group's next challenge."},

		// 18+ additions
		{ID: "romance18-t-01", Kind: models.KindTruth, Category: CategoryRomance, Age: models.AgeEighteen, Tags: []string{"social"}, Text: "Tell us about a romantic moment that left a spark."},
		{ID: "romance18-d-01", Kind: models.KindDare, Category: CategoryRomance, Age: models.AgeEighteen, Tags: []string{"creative"}, Text: "Compose a daring toast that makes the room blush."},
		{ID: "extreme18-t-01", Kind: models.KindTruth, Category: CategoryExtreme, Age: models.AgeEighteen, Tags: []string{"fun"}, Text: "What's the boldest thing you've done purely for fun?"},
		{ID: "extreme18-d-01", Kind: models.KindDare, Category: CategoryExtreme, Age: models.AgeEighteen, Tags: []string{"active"}, Text: "Invent and perform a 15-second victory dance."},
	}
	return cards
}
