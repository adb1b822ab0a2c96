package model

import "time"

// CacheEntryModel is the GORM-specific struct for the 'cache_entries' table
// backing the postgres cache driver.
type CacheEntryModel struct {
	CacheKey  string    `gorm:"type:varchar(512);primaryKey"`
	Value     []byte    `gorm:"type:bytea;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CacheEntryModel) TableName() string {
	return "cache_entries"
}
