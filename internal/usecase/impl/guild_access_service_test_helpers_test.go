package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"dashboard/config"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
	"dashboard/internal/infra/cache"
	mockRepo "dashboard/internal/mocks/repository"
	mockSvc "dashboard/internal/mocks/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type guildAccessFixtures struct {
	service        *guildAccessService
	cache          service.CacheStore
	credentialRepo *mockRepo.MockCredentialRepository
	accessRepo     *mockRepo.MockAccessControlRepository
	roleRepo       *mockRepo.MockRolePermissionRepository
	groupRepo      *mockRepo.MockGuildGroupRepository
	discord        *mockSvc.MockDiscordService
	bot            *mockSvc.MockBotService
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Cache: &config.CacheConfig{
			Driver: config.CacheDriverMemory,
			TTL:    config.DefaultCacheTTL(),
		},
		Access: &config.AccessConfig{
			MaxConcurrency: 4,
			ResolveTimeout: 5 * time.Second,
		},
	}

	return cfg
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newLenientMetrics accepts any observation.
func newLenientMetrics(t *testing.T) *mockSvc.MockMetrics {
	m := mockSvc.NewMockMetrics(t)
	m.EXPECT().CacheLookup(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().UpstreamFailure(mock.Anything).Maybe()
	m.EXPECT().PermissionDecision(mock.Anything, mock.Anything).Maybe()

	return m
}

func newMemoryCache(t *testing.T) service.CacheStore {
	t.Helper()

	store, err := cache.NewMemoryStore(1000)
	require.NoError(t, err)

	return store
}

func createTestGuildAccessService(t *testing.T) guildAccessFixtures {
	return createTestGuildAccessServiceWithCache(t, newMemoryCache(t))
}

func createTestGuildAccessServiceWithCache(t *testing.T, store service.CacheStore) guildAccessFixtures {
	fx := guildAccessFixtures{
		cache:          store,
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		accessRepo:     mockRepo.NewMockAccessControlRepository(t),
		roleRepo:       mockRepo.NewMockRolePermissionRepository(t),
		groupRepo:      mockRepo.NewMockGuildGroupRepository(t),
		discord:        mockSvc.NewMockDiscordService(t),
		bot:            mockSvc.NewMockBotService(t),
	}

	svc := NewGuildAccessService(GuildAccessParams{
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
		Cache:          store,
		Metrics:        newLenientMetrics(t),
		Discord:        fx.discord,
		Bot:            fx.bot,
		CredentialRepo: fx.credentialRepo,
		AccessRepo:     fx.accessRepo,
		RoleRepo:       fx.roleRepo,
		GroupRepo:      fx.groupRepo,
	}).(*guildAccessService)
	svc.now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

func validCredential(userID string) *entity.DiscordCredential {
	return &entity.DiscordCredential{
		UserID:      userID,
		AccessToken: "oauth-" + userID,
		ExpiresAt:   testNow.Add(time.Hour),
	}
}

func granted(userID string, guildIDs ...string) []*entity.AccessControlRecord {
	records := make([]*entity.AccessControlRecord, 0, len(guildIDs))
	for _, id := range guildIDs {
		records = append(records, &entity.AccessControlRecord{GuildID: id, UserID: userID, HasAccess: true})
	}

	return records
}

func summaryIDs(summaries []*entity.EnrichedGuildSummary) []string {
	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}

	return ids
}
