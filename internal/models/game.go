package models

import (
	"time"
)

// MiniGame identifies an intermission mini-game
type MiniGame string

const (
	// MiniGameNone means no intermission is running
	MiniGameNone MiniGame = ""

	// MiniGameSimon is the memory-reaction game
	MiniGameSimon MiniGame = "simon"

	// MiniGameMath is the arithmetic game
	MiniGameMath MiniGame = "math"
)

// Game holds the full state of one running session. It is created once at
// game start and mutated only by the game service.
type Game struct {
	// ID is the unique identifier for the session
	ID string

	// HostID is the external identity of the player who started the
	// session, empty when nobody is signed in
	HostID string

	// Players is the session's player list, in seating order
	Players []*Player

	// Settings were collected at setup and never change afterwards
	Settings GameSettings

	// Deck is the remaining draw pile, consumed from the tail
	Deck []Card

	// DiscardPile holds every card whose turn has finished
	DiscardPile []Card

	// CurrentCard is the card on the table, nil between turns. A card is
	// either in the deck, on the table, or in the discard pile, never in
	// two places at once.
	CurrentCard *Card

	// IsCardFlipped reports whether the current card is face up
	IsCardFlipped bool

	// CurrentPlayerIndex points at the player whose turn it is
	CurrentPlayerIndex int

	// PendingAction is the interaction currently awaited, nil if none
	PendingAction *PendingAction

	// Distribution maps target player ID to accumulated sips (distribute)
	// or marks selection membership (multiple losers)
	Distribution map[string]int

	// ActiveRules is the registry of standing rules
	ActiveRules []*ActiveRule

	// ActiveMiniGame is the intermission blocking the next draw, if any
	ActiveMiniGame MiniGame

	// GameStarted reports whether the session is past setup
	GameStarted bool

	// GameOver reports whether the session has ended
	GameOver bool

	// CreatedAt is when the session started
	CreatedAt time.Time

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time
}

// PlayerByID returns the player with the given ID, or nil
func (g *Game) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil when the
// player list is empty
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex%len(g.Players)]
}

// RuleOfType returns the first active rule of the given type, or nil
func (g *Game) RuleOfType(t RuleType) *ActiveRule {
	for _, r := range g.ActiveRules {
		if r.Type == t {
			return r
		}
	}
	return nil
}

// RuleByID returns the active rule with the given ID, or nil
func (g *Game) RuleByID(id string) *ActiveRule {
	for _, r := range g.ActiveRules {
		if r.ID == id {
			return r
		}
	}
	return nil
}
