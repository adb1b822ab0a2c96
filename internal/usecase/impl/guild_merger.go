package impl

import (
	"dashboard/internal/domain/entity"
)

// mergeGuilds builds the summaries for allowed guilds in Discord's order.
// A guild without a bot record is skipped: the bot is not installed there.
func mergeGuilds(
	upstream []*entity.UpstreamGuild,
	allowed map[string]bool,
	botGuilds map[string]*entity.BotGuild,
	groups map[string]*entity.GroupInfo,
) []*entity.EnrichedGuildSummary {
	summaries := make([]*entity.EnrichedGuildSummary, 0, len(allowed))

	for _, guild := range upstream {
		if !allowed[guild.ID] {
			continue
		}

		bot, ok := botGuilds[guild.ID]
		if !ok {
			continue
		}

		summary := &entity.EnrichedGuildSummary{
			ID:          guild.ID,
			Name:        firstNonEmpty(bot.Name, guild.Name),
			Icon:        firstNonEmpty(bot.Icon, guild.Icon),
			MemberCount: bot.MemberCount,
			RoleCount:   bot.RoleCount,
			Premium:     bot.Premium,
			Owner:       guild.Owner,
		}

		if info, ok := groups[guild.ID]; ok {
			summary.Group = &entity.GuildGroup{
				ID:          info.GroupID,
				Name:        info.GroupName,
				Description: info.GroupDescription,
			}
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
