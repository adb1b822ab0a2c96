package entity

// AccessControlRecord is an explicit per (identity, guild) dashboard grant.
type AccessControlRecord struct {
	GuildID   string `json:"guildId"`
	UserID    string `json:"userId"`
	HasAccess bool   `json:"hasAccess"`
}

// RolePermissionRule marks a guild role as granting dashboard access.
type RolePermissionRule struct {
	GuildID   string `json:"guildId"`
	RoleID    string `json:"roleId"`
	CanUseApp bool   `json:"canUseApp"`
}

// GuildAccessResult is the resolved access decision for one guild.
type GuildAccessResult struct {
	GuildID string `json:"guildId"`
	Allowed bool   `json:"allowed"`
}
