// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// GuildUsecase resolves which guilds an identity may manage in the dashboard.
type GuildUsecase interface {
	// ListAccessibleGuilds returns the enriched summaries of every guild the
	// identity may manage. Sources that fail contribute nothing; only a rejected
	// credential fails the whole call.
	ListAccessibleGuilds(ctx context.Context, userID string) ([]*entity.EnrichedGuildSummary, error)

	// CheckGuildAccess runs the permission chain for a single guild.
	CheckGuildAccess(ctx context.Context, userID, guildID string) (*entity.GuildAccessResult, error)
}
