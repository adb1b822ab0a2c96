package postgres

import (
	"context"
	"time"

	"dashboard/config"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB, cfg *config.Config) repository.CredentialRepository {
	return &credentialRepository{
		db:           db,
		queryTimeout: queryTimeoutFrom(cfg),
	}
}

// FindByUserID retrieves the stored Discord token of a user.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID string) (*entity.DiscordCredential, error) {
	var tokenModels []*model.DiscordTokenModel

	ctx, cancel := withQueryTimeout(ctx, repo.queryTimeout)
	defer cancel()

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&tokenModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find discord credential")
	}

	if len(tokenModels) == 0 {
		return nil, repository.ErrCredentialNotFound
	}

	tokenM := tokenModels[0]

	return &entity.DiscordCredential{
		UserID:      tokenM.UserID,
		AccessToken: tokenM.AccessToken,
		ExpiresAt:   tokenM.ExpiresAt,
	}, nil
}
