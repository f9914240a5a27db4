package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/drinkosaur/palmier/internal/repositories/session Repository

import (
	"context"

	"github.com/drinkosaur/palmier/internal/models"
)

// Repository defines the interface for session archive persistence
type Repository interface {
	// SaveSession archives a finished session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves an archived session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionsForHost retrieves all archived sessions for a host identity
	GetSessionsForHost(ctx context.Context, input *GetSessionsForHostInput) (*GetSessionsForHostOutput, error)
}
