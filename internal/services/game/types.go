package game

import (
	"github.com/sirupsen/logrus"

	"github.com/drinkosaur/palmier/internal/common/clock"
	"github.com/drinkosaur/palmier/internal/common/rng"
	"github.com/drinkosaur/palmier/internal/common/uuid"
	"github.com/drinkosaur/palmier/internal/deck"
	"github.com/drinkosaur/palmier/internal/models"
	"github.com/drinkosaur/palmier/internal/rules"
	profileRepo "github.com/drinkosaur/palmier/internal/repositories/profile"
	sessionRepo "github.com/drinkosaur/palmier/internal/repositories/session"
)

// Config holds configuration for the game service
type Config struct {
	// MaxPlayers caps the player list when settings carry no cap
	MaxPlayers int

	// Repository dependencies
	SessionRepo sessionRepo.Repository
	ProfileRepo profileRepo.Repository

	// Service dependencies
	DeckFactory   deck.Factory
	Random        rng.Random
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger for swallowed persistence failures and lifecycle events.
	// Optional; defaults to the logrus standard logger.
	Logger *logrus.Logger
}

// SipUpdate is one committed sip mutation
type SipUpdate struct {
	// TargetID is the player receiving the sips
	TargetID string

	// Sips is how many sips the target takes
	Sips int
}

// StartGameInput contains parameters for starting a session
type StartGameInput struct {
	// Players is the seating-ordered player list from setup. Players
	// without an ID get one assigned.
	Players []*models.Player

	// Settings for the session, immutable once started
	Settings models.GameSettings

	// HostID is the external identity of the host, empty when offline
	HostID string
}

// StartGameOutput contains the result of starting a session
type StartGameOutput struct {
	// GameID is the unique identifier for the new session
	GameID string

	// CardsInDeck is the size of the freshly shuffled deck
	CardsInDeck int
}

// DrawCardInput contains parameters for drawing a card
type DrawCardInput struct {
	GameID string
}

// DrawCardOutput contains the result of drawing a card
type DrawCardOutput struct {
	// Card is the drawn card, nil when the deck was exhausted
	Card *models.Card

	// Rule is the table rule for the drawn rank
	Rule rules.Rule

	// CardsLeft is the remaining deck size
	CardsLeft int

	// EveryoneDrinks is set when the card made the whole table drink
	EveryoneDrinks bool

	// GameOver is set when the deck was exhausted and the session ended
	GameOver bool
}

// ResolveCardInput contains parameters for resolving the table card
type ResolveCardInput struct {
	GameID string
}

// ResolveCardOutput contains the result of resolving the table card
type ResolveCardOutput struct {
	// PendingAction is the interaction opened, nil when none
	PendingAction *models.PendingAction

	// Notice is a transient message for the table, if any
	Notice string

	// TurnAdvanced is set when the turn moved on without an interaction
	TurnAdvanced bool

	// MiniGame is the intermission launched on advance, if any
	MiniGame models.MiniGame
}

// SelectTargetInput contains parameters for tapping a player
type SelectTargetInput struct {
	GameID string

	// TargetID is the tapped player
	TargetID string
}

// SelectTargetOutput contains the result of tapping a player
type SelectTargetOutput struct {
	// Ignored is set when the tap matched no pending action and was a no-op
	Ignored bool

	// Resolved is set when the tap completed the pending action
	Resolved bool

	// Updates are the sip mutations committed by this tap
	Updates []SipUpdate

	// PointsRemaining is the distribution pool left after this tap
	PointsRemaining int

	// Selected is the current multi-select membership
	Selected []string

	// Notice is a transient message for the table, if any
	Notice string

	// TurnAdvanced is set when resolution advanced the turn
	TurnAdvanced bool

	// MiniGame is the intermission launched on advance, if any
	MiniGame models.MiniGame
}

// ResetDistributionInput contains parameters for restarting a distribution
type ResetDistributionInput struct {
	GameID string
}

// ResetDistributionOutput contains the result of restarting a distribution
type ResetDistributionOutput struct {
	// Ignored is set when no distribution was pending
	Ignored bool

	// PointsRemaining is the restored pool
	PointsRemaining int
}

// ValidateLosersInput contains parameters for committing the multi-select
type ValidateLosersInput struct {
	GameID string
}

// ValidateLosersOutput contains the result of committing the multi-select
type ValidateLosersOutput struct {
	// Ignored is set when no multi-select was pending
	Ignored bool

	// Updates are the sip mutations committed
	Updates []SipUpdate

	// TurnAdvanced is set when resolution advanced the turn
	TurnAdvanced bool

	// MiniGame is the intermission launched on advance, if any
	MiniGame models.MiniGame
}

// ResolveSelfReportInput contains parameters for settling an ace or math
// penalty modal
type ResolveSelfReportInput struct {
	GameID string

	// Completed reports whether the player downed their drink, which is
	// worth a flat ten sips
	Completed bool

	// Sips is the self-reported count when the drink was not downed.
	// Clamped to a minimum of one.
	Sips int
}

// ResolveSelfReportOutput contains the result of settling the modal
type ResolveSelfReportOutput struct {
	// Ignored is set when no modal action was pending
	Ignored bool

	// SipsApplied is the count charged to the initiator
	SipsApplied int

	// TurnAdvanced is set when resolution advanced the turn
	TurnAdvanced bool

	// MiniGame is the intermission launched on advance, if any
	MiniGame models.MiniGame
}

// TriggerRuleInput contains parameters for invoking a standing rule
type TriggerRuleInput struct {
	GameID string

	// RuleID is the standing rule being invoked
	RuleID string
}

// TriggerRuleOutput contains the result of invoking a standing rule
type TriggerRuleOutput struct {
	// Ignored is set when the invocation was blocked (pending action,
	// mini-game, or quick mode) and nothing changed
	Ignored bool

	// PendingAction is the trap opened
	PendingAction *models.PendingAction
}

// CompleteMiniGameInput contains parameters for reporting a mini-game outcome
type CompleteMiniGameInput struct {
	GameID string

	// Success reports whether the current player passed
	Success bool
}

// CompleteMiniGameOutput contains the result of reporting a mini-game outcome
type CompleteMiniGameOutput struct {
	// Ignored is set when no mini-game was active
	Ignored bool

	// SipsApplied is the immediate penalty charged on failure, if any
	SipsApplied int

	// PendingAction is the self-report modal opened on a math failure
	PendingAction *models.PendingAction
}

// QuitGameInput contains parameters for quitting a session
type QuitGameInput struct {
	GameID string
}

// QuitGameOutput contains the result of quitting a session
type QuitGameOutput struct {
	// Players holds the final player stats
	Players []*models.Player
}

// GetGameInput contains parameters for reading a session
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the session state. Callers must treat it as
// read-only.
type GetGameOutput struct {
	Game *models.Game
}

// Award is an end-of-game distinction
type Award string

const (
	// AwardSimonDunce goes to the most memory-game failures
	AwardSimonDunce Award = "simon_dunce"

	// AwardMathDunce goes to the most arithmetic failures
	AwardMathDunce Award = "math_dunce"

	// AwardMostGenerous goes to the most sips handed out
	AwardMostGenerous Award = "most_generous"
)

// ScoreboardEntry is one player's line in the standings
type ScoreboardEntry struct {
	// PlayerID identifies the player
	PlayerID string

	// PlayerName is the display name
	PlayerName string

	// SipsTaken is the player's sip count
	SipsTaken int

	// SipsGiven is the player's handed-out count
	SipsGiven int

	// BloodAlcohol is the Widmark estimate, formatted with two decimals
	BloodAlcohol string

	// Awards are the player's distinctions
	Awards []Award
}

// GetScoreboardInput contains parameters for reading the standings
type GetScoreboardInput struct {
	GameID string
}

// GetScoreboardOutput contains the standings, highest estimate first
type GetScoreboardOutput struct {
	Entries []ScoreboardEntry
}
