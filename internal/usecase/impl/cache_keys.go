package impl

import (
	"net/url"
	"strings"
)

// Data classes double as cache key namespaces and metric labels.
const (
	dataClassUserGuilds  = "user-guilds"
	dataClassBotGuilds   = "bot-guilds"
	dataClassUserAccess  = "user-access"
	dataClassGuildGroups = "guild-groups"
	dataClassPermission  = "guild-permissions"
)

// cacheKey joins a namespace with escaped scope parts. Escaping keeps ':' out
// of the parts so two different (identity, guild) pairs never share a key.
func cacheKey(namespace string, parts ...string) string {
	var b strings.Builder
	b.WriteString(namespace)
	for _, part := range parts {
		b.WriteByte(':')
		b.WriteString(url.QueryEscape(part))
	}

	return b.String()
}

func userGuildsKey(userID string) string {
	return cacheKey(dataClassUserGuilds, userID)
}

func botGuildsKey() string {
	return cacheKey(dataClassBotGuilds)
}

func userAccessKey(userID string) string {
	return cacheKey(dataClassUserAccess, userID)
}

func guildGroupsKey() string {
	return cacheKey(dataClassGuildGroups)
}

func permissionKey(userID, guildID string) string {
	return cacheKey(dataClassPermission, userID, guildID)
}
