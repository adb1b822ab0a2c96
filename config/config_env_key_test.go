package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"discord": map[string]any{
			"botToken": "",
		},
		"botService": map[string]any{
			"apiKey": "",
		},
		"cache": map[string]any{
			"ttl": map[string]any{
				"userGuilds": "5m",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DISCORD_BOTTOKEN", want: "discord.botToken"},
		{envKey: "BOTSERVICE_APIKEY", want: "botService.apiKey"},
		{envKey: "CACHE_TTL_USERGUILDS", want: "cache.ttl.userGuilds"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "/login", cfg.Auth.LoginRedirectURL)
	assert.Equal(t, "session", cfg.Auth.CookieName)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.True(t, cfg.Cache.SingleFlight)
	assert.Equal(t, 200, cfg.Discord.PageSize)
	assert.Equal(t, 16, cfg.Access.MaxConcurrency)
	assert.Equal(t, DefaultCacheTTL(), cfg.Cache.TTL)
	assert.Equal(t, 15*time.Second, cfg.Cache.LoadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
}

func TestApplyDefaults_KeepsConfiguredTTLs(t *testing.T) {
	cfg := &Config{Cache: &CacheConfig{Driver: CacheDriverRedis}}
	cfg.Cache.TTL.BotGuilds = 30 * time.Second
	cfg.Cache.TTL.Permission = time.Minute

	applyDefaults(cfg)

	assert.Equal(t, CacheDriverRedis, cfg.Cache.Driver)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL.BotGuilds)
	assert.Equal(t, time.Minute, cfg.Cache.TTL.Permission)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL.UserGuilds)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL.GroupInfo)
}

func TestApplyDefaults_ClampsDiscordPageSize(t *testing.T) {
	cfg := &Config{Discord: &DiscordConfig{PageSize: 500}}

	applyDefaults(cfg)

	assert.Equal(t, 200, cfg.Discord.PageSize)
}
