package entity

// UpstreamGuild is Discord's view of a guild the identity belongs to.
type UpstreamGuild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Owner       bool   `json:"owner"`
	Permissions int64  `json:"permissions"`
}

// BotGuild is the bot service's view of a guild it is installed in.
type BotGuild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
	RoleCount   int    `json:"roleCount"`
	Icon        string `json:"icon"`
	Premium     bool   `json:"premium"`
}

// GroupInfo attaches a guild to an organizational group.
type GroupInfo struct {
	GuildID          string `json:"guildId"`
	GroupID          string `json:"groupId"`
	GroupName        string `json:"groupName"`
	GroupDescription string `json:"groupDescription"`
}

// GuildGroup is the group part of a summary.
type GuildGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// EnrichedGuildSummary is one entry of the guild list shown in the dashboard.
type EnrichedGuildSummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon,omitempty"`
	MemberCount int         `json:"memberCount"`
	RoleCount   int         `json:"roleCount"`
	Premium     bool        `json:"premium"`
	Owner       bool        `json:"owner"`
	Group       *GuildGroup `json:"group,omitempty"`
}
