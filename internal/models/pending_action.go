package models

// ActionType represents a kind of pending player interaction
type ActionType string

const (
	// ActionDistribute hands out a pool of sip points (ranks 2, 3, 8)
	ActionDistribute ActionType = "distribute"

	// ActionSelectLoser picks the single loser of a physical game (4, 5, 6, J)
	ActionSelectLoser ActionType = "select_loser"

	// ActionMultipleLosers picks any number of losers (rank 9)
	ActionMultipleLosers ActionType = "multiple_losers"

	// ActionAceCheck asks the drawer whether they downed their drink (A)
	ActionAceCheck ActionType = "ace_check"

	// ActionMathPenalty asks the player whether they paid a failed math round
	ActionMathPenalty ActionType = "math_penalty"

	// ActionKingRule punishes whoever broke a king's rule
	ActionKingRule ActionType = "king_rule"

	// ActionQuestionMasterTrap punishes whoever answered the question master
	ActionQuestionMasterTrap ActionType = "question_master_trap"

	// ActionFreezeTrap punishes the last player to freeze
	ActionFreezeTrap ActionType = "freeze_trap"
)

// PendingAction gates player interaction. While one is set, card draws and
// turn advances are blocked; only the action's own resolution path clears it.
type PendingAction struct {
	// Type is the kind of interaction awaited
	Type ActionType

	// SipsToDistribute is the full distribution pool (distribute only)
	SipsToDistribute int

	// SipsRemaining is what is left of the pool (distribute only)
	SipsRemaining int

	// InitiatorID is the player who opened the action, or the standing-rule
	// owner for trap actions
	InitiatorID string

	// CardName is the rule title shown when asking for a loser
	CardName string
}
