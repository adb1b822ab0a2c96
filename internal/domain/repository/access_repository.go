// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dashboard/internal/domain/entity"
)

// AccessControlRepository reads the explicit dashboard allow-list.
type AccessControlRepository interface {
	// FindGrantedByUser returns every row with has_access = true for the user.
	FindGrantedByUser(ctx context.Context, userID string) ([]*entity.AccessControlRecord, error)
}

// RolePermissionRepository reads which guild roles grant dashboard access.
type RolePermissionRepository interface {
	// FindAppRolesByGuild returns the rules with can_use_app = true for the guild.
	FindAppRolesByGuild(ctx context.Context, guildID string) ([]*entity.RolePermissionRule, error)
}

// GuildGroupRepository reads the guild to group mapping.
type GuildGroupRepository interface {
	// FindAll returns the mapping for every grouped guild.
	FindAll(ctx context.Context) ([]*entity.GroupInfo, error)
}
