package repository

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/errors"
)

// ErrCredentialNotFound is returned when no Discord token is stored for a user.
var ErrCredentialNotFound = errors.New("discord credential not found")

// CredentialRepository reads the Discord OAuth tokens persisted by the auth service.
type CredentialRepository interface {
	// FindByUserID retrieves the credential for a user.
	FindByUserID(ctx context.Context, userID string) (*entity.DiscordCredential, error)
}
