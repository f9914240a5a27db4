package game

import "context"

// Service defines the interface for the turn engine
type Service interface {
	// StartGame creates a new session from a player list and settings
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// DrawCard pops the next card onto the table, face up
	DrawCard(ctx context.Context, input *DrawCardInput) (*DrawCardOutput, error)

	// ResolveCard interprets the card on the table: it opens a pending
	// action, registers a standing rule, or advances the turn
	ResolveCard(ctx context.Context, input *ResolveCardInput) (*ResolveCardOutput, error)

	// SelectTarget routes a tap on a player into the pending action
	SelectTarget(ctx context.Context, input *SelectTargetInput) (*SelectTargetOutput, error)

	// ResetDistribution restores the full distribution pool
	ResetDistribution(ctx context.Context, input *ResetDistributionInput) (*ResetDistributionOutput, error)

	// ValidateLosers commits the multi-select round
	ValidateLosers(ctx context.Context, input *ValidateLosersInput) (*ValidateLosersOutput, error)

	// ResolveSelfReport settles an ace or math-penalty modal
	ResolveSelfReport(ctx context.Context, input *ResolveSelfReportInput) (*ResolveSelfReportOutput, error)

	// TriggerRule invokes a standing rule from the sidebar
	TriggerRule(ctx context.Context, input *TriggerRuleInput) (*TriggerRuleOutput, error)

	// CompleteMiniGame consumes a mini-game's boolean outcome
	CompleteMiniGame(ctx context.Context, input *CompleteMiniGameInput) (*CompleteMiniGameOutput, error)

	// QuitGame ends a session on request
	QuitGame(ctx context.Context, input *QuitGameInput) (*QuitGameOutput, error)

	// GetGame returns the current state of a session
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetScoreboard returns the standings, Widmark estimates and awards
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)
}
