// Package entity contains the core business objects of the project.
package entity

import "time"

// DiscordCredential is the OAuth bearer token the auth service stored for an identity.
type DiscordCredential struct {
	UserID      string    `json:"user_id"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the credential can no longer be used at t.
func (c *DiscordCredential) Expired(t time.Time) bool {
	return !c.ExpiresAt.IsZero() && !t.Before(c.ExpiresAt)
}
