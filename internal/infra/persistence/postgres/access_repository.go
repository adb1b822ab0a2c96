// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// accessControlRepository implements the repository.AccessControlRepository interface.
type accessControlRepository struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

// NewAccessControlRepository is the constructor for accessControlRepository.
func NewAccessControlRepository(db *gorm.DB, cfg *config.Config) repository.AccessControlRepository {
	return &accessControlRepository{
		db:           db,
		queryTimeout: queryTimeoutFrom(cfg),
	}
}

// FindGrantedByUser retrieves every guild the user was explicitly granted.
// Rows with has_access = false are never read.
func (repo *accessControlRepository) FindGrantedByUser(ctx context.Context, userID string) ([]*entity.AccessControlRecord, error) {
	var accessModels []*model.AccessControlModel

	ctx, cancel := withQueryTimeout(ctx, repo.queryTimeout)
	defer cancel()

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND has_access = ?", userID, true).
		Find(&accessModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find access control rows")
	}

	records := make([]*entity.AccessControlRecord, 0, len(accessModels))
	for _, accessM := range accessModels {
		records = append(records, &entity.AccessControlRecord{
			GuildID:   accessM.GuildID,
			UserID:    accessM.UserID,
			HasAccess: accessM.HasAccess,
		})
	}

	return records, nil
}

// rolePermissionRepository implements the repository.RolePermissionRepository interface.
type rolePermissionRepository struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

// NewRolePermissionRepository is the constructor for rolePermissionRepository.
func NewRolePermissionRepository(db *gorm.DB, cfg *config.Config) repository.RolePermissionRepository {
	return &rolePermissionRepository{
		db:           db,
		queryTimeout: queryTimeoutFrom(cfg),
	}
}

// FindAppRolesByGuild retrieves the roles that may use the dashboard in a guild.
func (repo *rolePermissionRepository) FindAppRolesByGuild(ctx context.Context, guildID string) ([]*entity.RolePermissionRule, error) {
	var ruleModels []*model.RolePermissionModel

	ctx, cancel := withQueryTimeout(ctx, repo.queryTimeout)
	defer cancel()

	if err := repo.db.WithContext(ctx).
		Where("guild_id = ? AND can_use_app = ?", guildID, true).
		Find(&ruleModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find role permission rules")
	}

	rules := make([]*entity.RolePermissionRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, &entity.RolePermissionRule{
			GuildID:   ruleM.GuildID,
			RoleID:    ruleM.RoleID,
			CanUseApp: ruleM.CanUseApp,
		})
	}

	return rules, nil
}
