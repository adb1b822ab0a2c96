package impl

import (
	"context"

	"dashboard/config"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
)

// sourceFetchers loads the four data classes the pipeline combines, each
// behind its own cache entry and TTL.
type sourceFetchers struct {
	discord     service.DiscordService
	bot         service.BotService
	accessRepo  repository.AccessControlRepository
	groupRepo   repository.GuildGroupRepository
	userGuilds  *cachedFetcher[[]*entity.UpstreamGuild]
	botGuilds   *cachedFetcher[[]*entity.BotGuild]
	userAccess  *cachedFetcher[[]string]
	guildGroups *cachedFetcher[[]*entity.GroupInfo]
}

func newSourceFetchers(
	ttl config.CacheTTLConfig,
	deps fetcherDeps,
	discord service.DiscordService,
	bot service.BotService,
	accessRepo repository.AccessControlRepository,
	groupRepo repository.GuildGroupRepository,
) *sourceFetchers {
	return &sourceFetchers{
		discord:     discord,
		bot:         bot,
		accessRepo:  accessRepo,
		groupRepo:   groupRepo,
		userGuilds:  newCachedFetcher[[]*entity.UpstreamGuild](dataClassUserGuilds, ttl.UserGuilds, deps),
		botGuilds:   newCachedFetcher[[]*entity.BotGuild](dataClassBotGuilds, ttl.BotGuilds, deps),
		userAccess:  newCachedFetcher[[]string](dataClassUserAccess, ttl.AccessControl, deps),
		guildGroups: newCachedFetcher[[]*entity.GroupInfo](dataClassGuildGroups, ttl.GroupInfo, deps),
	}
}

// UserGuilds returns the guilds Discord reports for the identity.
func (f *sourceFetchers) UserGuilds(ctx context.Context, cred *entity.DiscordCredential) ([]*entity.UpstreamGuild, error) {
	return f.userGuilds.fetch(ctx, userGuildsKey(cred.UserID), func(ctx context.Context) ([]*entity.UpstreamGuild, error) {
		return f.discord.UserGuilds(ctx, cred.AccessToken)
	})
}

// BotGuilds returns every guild the bot is installed in.
func (f *sourceFetchers) BotGuilds(ctx context.Context) ([]*entity.BotGuild, error) {
	return f.botGuilds.fetch(ctx, botGuildsKey(), f.bot.Guilds)
}

// AllowList returns the ids of the guilds the identity was explicitly granted.
func (f *sourceFetchers) AllowList(ctx context.Context, userID string) ([]string, error) {
	return f.userAccess.fetch(ctx, userAccessKey(userID), func(ctx context.Context) ([]string, error) {
		records, err := f.accessRepo.FindGrantedByUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		guildIDs := make([]string, 0, len(records))
		for _, record := range records {
			if record.HasAccess {
				guildIDs = append(guildIDs, record.GuildID)
			}
		}

		return guildIDs, nil
	})
}

// GroupInfo returns the groups of the requested guilds. The whole mapping is
// cached as one entry and filtered per call.
func (f *sourceFetchers) GroupInfo(ctx context.Context, guildIDs []string) (map[string]*entity.GroupInfo, error) {
	groups := make(map[string]*entity.GroupInfo, len(guildIDs))
	if len(guildIDs) == 0 {
		return groups, nil
	}

	all, err := f.guildGroups.fetch(ctx, guildGroupsKey(), f.groupRepo.FindAll)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(guildIDs))
	for _, id := range guildIDs {
		wanted[id] = struct{}{}
	}
	for _, info := range all {
		if _, ok := wanted[info.GuildID]; ok {
			groups[info.GuildID] = info
		}
	}

	return groups, nil
}
