package model

import "time"

// DiscordTokenModel is the GORM-specific struct for the 'user_discord_tokens' table,
// written by the auth service at login.
type DiscordTokenModel struct {
	UserID      string    `gorm:"type:varchar(32);primaryKey"`
	AccessToken string    `gorm:"type:text;not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscordTokenModel) TableName() string {
	return "user_discord_tokens"
}
