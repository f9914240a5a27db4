package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/drinkosaur/palmier/internal/repositories/profile Repository

import (
	"context"

	"github.com/drinkosaur/palmier/internal/models"
)

// Repository defines the interface for player identity persistence
type Repository interface {
	// SaveProfile persists a profile's identity fields
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a profile with its lifetime stats
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)

	// IncrementStats applies cumulative deltas to a profile's lifetime stats
	IncrementStats(ctx context.Context, input *IncrementStatsInput) error
}
