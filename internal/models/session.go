package models

import (
	"time"
)

// PlayerResult is one player's final line in an archived session
type PlayerResult struct {
	// Name is the display name of the player
	Name string

	// AlcoholType is what the player was drinking
	AlcoholType AlcoholType

	// SipsTaken is the player's final sip count
	SipsTaken int

	// SipsGiven is the player's final handed-out count
	SipsGiven int

	// SimonFailures is the player's memory-game failure count
	SimonFailures int

	// MathFailures is the player's arithmetic failure count
	MathFailures int

	// UID is the player's external identity, empty for guests
	UID string
}

// Session is the archived record of a finished game
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// HostID is the external identity of the host, empty when offline
	HostID string

	// Settings the session was played with
	Settings GameSettings

	// Players holds each player's final stats
	Players []PlayerResult

	// FinishedAt is when the session ended
	FinishedAt time.Time
}
