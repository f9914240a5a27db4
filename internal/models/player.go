package models

// AlcoholType represents what a player is drinking
type AlcoholType string

const (
	// AlcoholBeer is beer (~5%)
	AlcoholBeer AlcoholType = "beer"

	// AlcoholWine is wine (~12%)
	AlcoholWine AlcoholType = "wine"

	// AlcoholMixWeak is a soft mixed drink
	AlcoholMixWeak AlcoholType = "mix_weak"

	// AlcoholMixStrong is a strong mixed drink
	AlcoholMixStrong AlcoholType = "mix_strong"

	// AlcoholHard is straight liquor
	AlcoholHard AlcoholType = "hard"
)

// Gender is used by the Widmark estimate only
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Player represents a participant in a game session
type Player struct {
	// ID is the unique identifier of the player for this session
	ID string

	// Name is the display name of the player
	Name string

	// AlcoholType is what the player is drinking
	AlcoholType AlcoholType

	// Weight is the player's weight in kg, used for the Widmark estimate
	Weight int

	// Gender is used for the Widmark estimate
	Gender Gender

	// SipsTaken is the number of sips the player has drunk
	SipsTaken int

	// SipsGiven is the number of sips the player has handed out
	SipsGiven int

	// SimonFailures counts failed memory mini-games
	SimonFailures int

	// MathFailures counts failed arithmetic mini-games
	MathFailures int

	// UID is the player's external identity, empty for guests
	UID string
}
