package profile

import "github.com/drinkosaur/palmier/internal/models"

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UID string
}

// IncrementStatsInput contains the per-session deltas to add to a profile's
// lifetime stats. Zero fields are skipped.
type IncrementStatsInput struct {
	UID           string
	TotalGames    int
	TotalSips     int
	SipsGiven     int
	SimonFailures int
	MathFailures  int
}
