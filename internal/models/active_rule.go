package models

import (
	"time"
)

// RuleType represents a kind of standing rule
type RuleType string

const (
	// RuleTypeKing is a rule invented by a King drawer. Non-exclusive:
	// several kings may hold rules at once.
	RuleTypeKing RuleType = "king"

	// RuleTypeQuestionMaster marks the current question master. At most
	// one exists; a new registration evicts the previous holder.
	RuleTypeQuestionMaster RuleType = "question_master"

	// RuleTypeFreezeMaster marks the current freeze master. Same
	// single-slot semantics as the question master.
	RuleTypeFreezeMaster RuleType = "freeze_master"
)

// ActiveRule is a standing rule bound to a player, triggerable on demand
type ActiveRule struct {
	// ID is the unique identifier of the rule
	ID string

	// PlayerID is the owner of the rule
	PlayerID string

	// Type is the kind of rule
	Type RuleType

	// RegisteredAt is when the rule was registered
	RegisteredAt time.Time
}
