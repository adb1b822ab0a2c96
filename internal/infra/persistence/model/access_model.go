package model

import "time"

// AccessControlModel is the GORM-specific struct for the 'guild_access_control' table.
// Rows are maintained by the dashboard admin pages; this service only reads them.
type AccessControlModel struct {
	GuildID   string `gorm:"type:varchar(32);primaryKey"`
	UserID    string `gorm:"type:varchar(32);primaryKey;index"`
	HasAccess bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessControlModel) TableName() string {
	return "guild_access_control"
}

// RolePermissionModel is the GORM-specific struct for the 'guild_role_permissions' table.
type RolePermissionModel struct {
	GuildID   string `gorm:"type:varchar(32);primaryKey"`
	RoleID    string `gorm:"type:varchar(32);primaryKey"`
	CanUseApp bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RolePermissionModel) TableName() string {
	return "guild_role_permissions"
}
