package models

import (
	"time"
)

// ProfileStats are an identity's lifetime counters, accumulated across
// sessions
type ProfileStats struct {
	// TotalGames is how many sessions the identity finished
	TotalGames int

	// TotalSips is the lifetime sip count
	TotalSips int

	// SipsGiven is the lifetime handed-out count
	SipsGiven int

	// SimonFailures is the lifetime memory-game failure count
	SimonFailures int

	// MathFailures is the lifetime arithmetic failure count
	MathFailures int
}

// Profile is a persistent player identity
type Profile struct {
	// UID is the external identity of the player
	UID string

	// DisplayName is the profile's display name
	DisplayName string

	// Stats are the lifetime counters
	Stats ProfileStats

	// CreatedAt is when the profile was first seen
	CreatedAt time.Time
}
