package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     GameError = "game not found"
	ErrGameOver         GameError = "game is over"
	ErrGameFull         GameError = "game is at maximum capacity"
	ErrNoPlayers        GameError = "at least one player is required"
	ErrCardOnTable      GameError = "a card is already on the table"
	ErrNoCardOnTable    GameError = "no card has been drawn"
	ErrActionPending    GameError = "another action is pending"
	ErrMiniGameActive   GameError = "a mini-game is in progress"
	ErrRuleNotFound     GameError = "active rule not found"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilProfileRepo   GameError = "profile repository cannot be nil"
	ErrNilDeckFactory   GameError = "deck factory cannot be nil"
	ErrNilRandom        GameError = "random source cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
