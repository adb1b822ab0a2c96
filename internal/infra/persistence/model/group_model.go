package model

import "time"

// GuildGroupModel is the GORM-specific struct for the 'guild_groups' table.
type GuildGroupModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuildGroupModel) TableName() string {
	return "guild_groups"
}

// GuildGroupMemberModel is the GORM-specific struct for the 'guild_group_members' table.
// A guild belongs to at most one group.
type GuildGroupMemberModel struct {
	GuildID string `gorm:"type:varchar(32);primaryKey"`
	GroupID string `gorm:"type:varchar(64);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (GuildGroupMemberModel) TableName() string {
	return "guild_group_members"
}
