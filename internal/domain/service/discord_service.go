package service

import (
	"context"

	"dashboard/internal/domain/entity"
)

// DiscordService talks to the Discord REST API.
type DiscordService interface {
	// UserGuilds lists the guilds the bearer token's owner belongs to.
	// A rejected token yields domain errors.ErrCredentialExpired.
	UserGuilds(ctx context.Context, accessToken string) ([]*entity.UpstreamGuild, error)

	// MemberRoles returns the role ids a user holds in a guild, using the bot credential.
	MemberRoles(ctx context.Context, guildID, userID string) ([]string, error)
}

// BotService talks to the bot's internal API.
type BotService interface {
	// Guilds lists the guilds the bot is installed in.
	Guilds(ctx context.Context) ([]*entity.BotGuild, error)
}
