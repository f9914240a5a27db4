package session

import "github.com/drinkosaur/palmier/internal/models"

// SaveSessionInput contains parameters for archiving a session
type SaveSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionsForHostInput contains parameters for retrieving a host's sessions
type GetSessionsForHostInput struct {
	HostID string
}

// GetSessionsForHostOutput contains the result of retrieving a host's sessions
type GetSessionsForHostOutput struct {
	Sessions []*models.Session
}
