package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"dashboard/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultLoginRedirectURL   = "/login"

	// Cache drivers
	CacheDriverMemory   = "memory"
	CacheDriverRedis    = "redis"
	CacheDriverPostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`

		// AllowedOrigins lists dashboard origins that may call the API with cookies.
		// Empty disables CORS; the dashboard is then served from the same origin.
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	// SecretKey.Access verifies session tokens issued by the auth service.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Discord *DiscordConfig `json:"discord" yaml:"discord"`

	BotService *BotServiceConfig `json:"botService" yaml:"botService"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Access *AccessConfig `json:"access" yaml:"access"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines how unauthenticated clients are sent back to login
type AuthConfig struct {
	LoginRedirectURL string `json:"loginRedirectUrl" yaml:"loginRedirectUrl"`
	CookieName       string `json:"cookieName" yaml:"cookieName"`
}

// DatabaseConfig bounds the access-control queries
type DatabaseConfig struct {
	QueryTimeout time.Duration `json:"queryTimeout" yaml:"queryTimeout"`
}

// DiscordConfig defines access to the Discord REST API
type DiscordConfig struct {
	// Bot token used for member role lookups (without the "Bot " prefix)
	BotToken string `json:"botToken" yaml:"botToken"`

	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Page size for /users/@me/guilds, Discord caps this at 200
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// BotServiceConfig defines access to the bot's internal API
type BotServiceConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey         string        `json:"apiKey" yaml:"apiKey"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// CacheConfig defines the cache backend and per data class freshness
type CacheConfig struct {
	Driver    string `json:"driver" yaml:"driver"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	// SingleFlight collapses concurrent loads of the same cold key
	SingleFlight bool `json:"singleFlight" yaml:"singleFlight"`

	// LoadTimeout bounds a shared load, which outlives the request that started it
	LoadTimeout time.Duration `json:"loadTimeout" yaml:"loadTimeout"`

	Memory struct {
		MaxEntries int `json:"maxEntries" yaml:"maxEntries"`
	} `json:"memory" yaml:"memory"`

	Redis struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
		PoolSize int    `json:"poolSize" yaml:"poolSize"`
	} `json:"redis" yaml:"redis"`

	TTL CacheTTLConfig `json:"ttl" yaml:"ttl"`
}

// CacheTTLConfig holds the TTL of every cached data class
type CacheTTLConfig struct {
	UserGuilds    time.Duration `json:"userGuilds" yaml:"userGuilds"`
	BotGuilds     time.Duration `json:"botGuilds" yaml:"botGuilds"`
	AccessControl time.Duration `json:"accessControl" yaml:"accessControl"`
	GroupInfo     time.Duration `json:"groupInfo" yaml:"groupInfo"`
	Permission    time.Duration `json:"permission" yaml:"permission"`
}

// AccessConfig tunes the per-guild permission fan-out
type AccessConfig struct {
	MaxConcurrency int           `json:"maxConcurrency" yaml:"maxConcurrency"`
	ResolveTimeout time.Duration `json:"resolveTimeout" yaml:"resolveTimeout"`
}

// DefaultCacheTTL returns the freshness windows used when none are configured.
func DefaultCacheTTL() CacheTTLConfig {
	return CacheTTLConfig{
		UserGuilds:    5 * time.Minute,
		BotGuilds:     1 * time.Minute,
		AccessControl: 5 * time.Minute,
		GroupInfo:     30 * time.Minute,
		Permission:    10 * time.Minute,
	}
}

// LoadWithEnv loads .yaml files through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DISCORD_BOTTOKEN -> discord.botToken, aligned with the YAML keys
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.LoginRedirectURL == "" {
		cfg.Auth.LoginRedirectURL = defaultLoginRedirectURL
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "session"
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.QueryTimeout <= 0 {
		cfg.Database.QueryTimeout = 5 * time.Second
	}

	if cfg.Discord == nil {
		cfg.Discord = &DiscordConfig{}
	}
	if cfg.Discord.RequestTimeout <= 0 {
		cfg.Discord.RequestTimeout = 10 * time.Second
	}
	if cfg.Discord.PageSize <= 0 || cfg.Discord.PageSize > 200 {
		cfg.Discord.PageSize = 200
	}

	if cfg.BotService == nil {
		cfg.BotService = &BotServiceConfig{}
	}
	if cfg.BotService.RequestTimeout <= 0 {
		cfg.BotService.RequestTimeout = 5 * time.Second
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{SingleFlight: true}
	}
	if cfg.Cache.Driver == "" {
		cfg.Cache.Driver = CacheDriverMemory
	}
	if cfg.Cache.Memory.MaxEntries <= 0 {
		cfg.Cache.Memory.MaxEntries = 100_000
	}
	if cfg.Cache.LoadTimeout <= 0 {
		cfg.Cache.LoadTimeout = 15 * time.Second
	}
	cfg.Cache.TTL = mergeTTL(cfg.Cache.TTL, DefaultCacheTTL())

	if cfg.Access == nil {
		cfg.Access = &AccessConfig{}
	}
	if cfg.Access.MaxConcurrency <= 0 {
		cfg.Access.MaxConcurrency = 16
	}
	if cfg.Access.ResolveTimeout <= 0 {
		cfg.Access.ResolveTimeout = 15 * time.Second
	}
}

func mergeTTL(ttl, fallback CacheTTLConfig) CacheTTLConfig {
	pick := func(v, d time.Duration) time.Duration {
		if v <= 0 {
			return d
		}

		return v
	}

	return CacheTTLConfig{
		UserGuilds:    pick(ttl.UserGuilds, fallback.UserGuilds),
		BotGuilds:     pick(ttl.BotGuilds, fallback.BotGuilds),
		AccessControl: pick(ttl.AccessControl, fallback.AccessControl),
		GroupInfo:     pick(ttl.GroupInfo, fallback.GroupInfo),
		Permission:    pick(ttl.Permission, fallback.Permission),
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
