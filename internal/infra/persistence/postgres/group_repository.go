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

// groupInfoRow is the projection of the member/group join.
type groupInfoRow struct {
	GuildID          string
	GroupID          string
	GroupName        string
	GroupDescription string
}

// guildGroupRepository implements the repository.GuildGroupRepository interface.
type guildGroupRepository struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

// NewGuildGroupRepository is the constructor for guildGroupRepository.
func NewGuildGroupRepository(db *gorm.DB, cfg *config.Config) repository.GuildGroupRepository {
	return &guildGroupRepository{
		db:           db,
		queryTimeout: queryTimeoutFrom(cfg),
	}
}

// FindAll retrieves the group of every grouped guild.
func (repo *guildGroupRepository) FindAll(ctx context.Context) ([]*entity.GroupInfo, error) {
	var rows []groupInfoRow

	ctx, cancel := withQueryTimeout(ctx, repo.queryTimeout)
	defer cancel()

	if err := repo.db.WithContext(ctx).
		Model(&model.GuildGroupMemberModel{}).
		Select("guild_group_members.guild_id, guild_groups.id AS group_id, guild_groups.name AS group_name, guild_groups.description AS group_description").
		Joins("JOIN guild_groups ON guild_groups.id = guild_group_members.group_id").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find guild groups")
	}

	groups := make([]*entity.GroupInfo, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, &entity.GroupInfo{
			GuildID:          row.GuildID,
			GroupID:          row.GroupID,
			GroupName:        row.GroupName,
			GroupDescription: row.GroupDescription,
		})
	}

	return groups, nil
}
