package models

// GameMode selects how much of the card semantics apply
type GameMode string

const (
	// GameModeQuick advances turns with no sip accounting
	GameModeQuick GameMode = "quick"

	// GameModeFun is the full game
	GameModeFun GameMode = "fun"
)

// Difficulty scales sip penalties
type Difficulty string

const (
	DifficultySoft   Difficulty = "soft"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyGoated Difficulty = "goated"
)

// GameSettings is supplied once at session start and immutable afterwards
type GameSettings struct {
	// Mode is quick or fun
	Mode GameMode

	// Difficulty scales sip penalties
	Difficulty Difficulty

	// SimonEnabled turns on the memory-reaction mini-game
	SimonEnabled bool

	// MathEnabled turns on the arithmetic mini-game
	MathEnabled bool

	// MaxPlayers caps the player list
	MaxPlayers int
}
