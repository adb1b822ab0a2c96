package impl

import (
	"context"
	"testing"
	"time"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGuildAccessService_ListAccessibleGuilds(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
	fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).Return([]*entity.UpstreamGuild{
		{ID: "g1", Name: "Upstream One", Icon: "up1", Owner: true},
		{ID: "g2", Name: "Upstream Two", Icon: "up2"},
		{ID: "g3", Name: "Not Granted"},
	}, nil).Once()
	fx.bot.EXPECT().Guilds(mock.Anything).Return([]*entity.BotGuild{
		{ID: "g1", Name: "Bot One", MemberCount: 10, RoleCount: 3, Icon: "bot1", Premium: true},
		{ID: "g2", MemberCount: 5},
		{ID: "g3", Name: "Bot Three"},
	}, nil).Once()
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(granted("u1", "g1", "g2", "g9"), nil).Once()
	fx.groupRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.GroupInfo{
		{GuildID: "g1", GroupID: "grp", GroupName: "Esports", GroupDescription: "Competitive"},
		{GuildID: "g3", GroupID: "grp", GroupName: "Esports"},
	}, nil).Once()

	summaries, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"g1", "g2"}, summaryIDs(summaries))

	assert.Equal(t, &entity.EnrichedGuildSummary{
		ID:          "g1",
		Name:        "Bot One",
		Icon:        "bot1",
		MemberCount: 10,
		RoleCount:   3,
		Premium:     true,
		Owner:       true,
		Group:       &entity.GuildGroup{ID: "grp", Name: "Esports", Description: "Competitive"},
	}, summaries[0])

	// Partial bot data falls back to Discord's fields.
	assert.Equal(t, "Upstream Two", summaries[1].Name)
	assert.Equal(t, "up2", summaries[1].Icon)
	assert.Equal(t, 5, summaries[1].MemberCount)
	assert.Nil(t, summaries[1].Group)
}

func TestGuildAccessService_ListAccessibleGuilds_SecondRunHitsCacheOnly(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil).Times(2)
	fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).
		Return([]*entity.UpstreamGuild{{ID: "g1", Name: "One"}, {ID: "g2", Name: "Two"}}, nil).Once()
	fx.bot.EXPECT().Guilds(mock.Anything).
		Return([]*entity.BotGuild{{ID: "g1", Name: "One"}, {ID: "g2", Name: "Two"}}, nil).Once()
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(granted("u1", "g1", "g2"), nil).Once()
	fx.groupRepo.EXPECT().FindAll(mock.Anything).
		Return([]*entity.GroupInfo{{GuildID: "g2", GroupID: "grp", GroupName: "Group"}}, nil).Once()

	first, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	require.NoError(t, err)

	second, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
}

func TestGuildAccessService_ListAccessibleGuilds_AllowListFailureDeniesAll(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
	fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).
		Return([]*entity.UpstreamGuild{{ID: "g1", Owner: true}}, nil)
	fx.bot.EXPECT().Guilds(mock.Anything).Return([]*entity.BotGuild{{ID: "g1"}}, nil)
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(nil, errors.New("connection refused")).Once()

	summaries, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, summaries)

	// The failure was not cached: the next request asks the database again.
	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(granted("u1", "g1"), nil).Once()
	fx.groupRepo.EXPECT().FindAll(mock.Anything).Return(nil, nil)

	summaries, err = fx.service.ListAccessibleGuilds(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1"}, summaryIDs(summaries))
}

func TestGuildAccessService_ListAccessibleGuilds_BotServiceDown(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
	fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).Return([]*entity.UpstreamGuild{{ID: "g1"}}, nil)
	fx.bot.EXPECT().Guilds(mock.Anything).Return(nil, errors.New("503"))
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(granted("u1", "g1"), nil)
	fx.groupRepo.EXPECT().FindAll(mock.Anything).Return(nil, nil)

	summaries, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestGuildAccessService_ListAccessibleGuilds_GroupInfoFailure(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
	fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).Return([]*entity.UpstreamGuild{{ID: "g1", Name: "One"}}, nil)
	fx.bot.EXPECT().Guilds(mock.Anything).Return([]*entity.BotGuild{{ID: "g1"}}, nil)
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(granted("u1", "g1"), nil)
	fx.groupRepo.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("timeout"))

	summaries, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].Group)
	assert.Equal(t, "One", summaries[0].Name)
}

func TestGuildAccessService_ListAccessibleGuilds_CredentialRejectedByDiscord(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
	fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).
		Return(nil, domainerrors.ErrCredentialExpired.WrapMessage("401"))
	fx.bot.EXPECT().Guilds(mock.Anything).Return([]*entity.BotGuild{}, nil).Maybe()
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(nil, nil).Maybe()

	summaries, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	assert.Nil(t, summaries)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialExpired)
}

func TestGuildAccessService_ListAccessibleGuilds_StoredCredentialExpired(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")
	cred.ExpiresAt = testNow.Add(-time.Second)

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)

	_, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	assert.ErrorIs(t, err, domainerrors.ErrCredentialExpired)
}

func TestGuildAccessService_ListAccessibleGuilds_NoCredential(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(nil, repository.ErrCredentialNotFound)

	_, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	assert.True(t, domainerrors.RequiresReauth(err))
}

func TestGuildAccessService_ListAccessibleGuilds_CredentialLookupFails(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(nil, errors.New("db down"))

	_, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	require.Error(t, err)
	assert.False(t, domainerrors.RequiresReauth(err))
	assert.Contains(t, err.Error(), "failed to load discord credential")
}

func TestGuildAccessService_ListAccessibleGuilds_CachedDenialWins(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")

	// An earlier request denied g1.
	require.NoError(t, fx.cache.Set(ctx, permissionKey("u1", "g1"), []byte("false"), time.Minute))

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
	fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).
		Return([]*entity.UpstreamGuild{{ID: "g1"}, {ID: "g2"}}, nil)
	fx.bot.EXPECT().Guilds(mock.Anything).Return([]*entity.BotGuild{{ID: "g1"}, {ID: "g2"}}, nil)
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(granted("u1", "g1", "g2"), nil)
	fx.groupRepo.EXPECT().FindAll(mock.Anything).Return(nil, nil)

	summaries, err := fx.service.ListAccessibleGuilds(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"g2"}, summaryIDs(summaries))
}

func TestGuildAccessService_CheckGuildAccess(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		userGuilds []*entity.UpstreamGuild
		allowList  []*entity.AccessControlRecord
		setup      func(fx guildAccessFixtures)
		allowed    bool
	}{
		{
			name:       "allow-listed",
			userGuilds: []*entity.UpstreamGuild{{ID: "g1"}},
			allowList:  granted("u1", "g1"),
			allowed:    true,
		},
		{
			name:       "owner without allow-list row",
			userGuilds: []*entity.UpstreamGuild{{ID: "g1", Owner: true}},
			allowed:    true,
		},
		{
			name:       "not a member",
			userGuilds: []*entity.UpstreamGuild{{ID: "g2", Owner: true}},
			allowList:  granted("u1", "g1"),
			allowed:    false,
		},
		{
			name:       "role match",
			userGuilds: []*entity.UpstreamGuild{{ID: "g1"}},
			setup: func(fx guildAccessFixtures) {
				fx.roleRepo.EXPECT().FindAppRolesByGuild(mock.Anything, "g1").
					Return([]*entity.RolePermissionRule{{GuildID: "g1", RoleID: "mod", CanUseApp: true}}, nil)
				fx.discord.EXPECT().MemberRoles(mock.Anything, "g1", "u1").Return([]string{"mod"}, nil)
			},
			allowed: true,
		},
		{
			name:       "no role rules configured",
			userGuilds: []*entity.UpstreamGuild{{ID: "g1"}},
			setup: func(fx guildAccessFixtures) {
				fx.roleRepo.EXPECT().FindAppRolesByGuild(mock.Anything, "g1").Return(nil, nil)
			},
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGuildAccessService(t)
			cred := validCredential("u1")

			fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
			fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).Return(tt.userGuilds, nil)
			fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(tt.allowList, nil)
			if tt.setup != nil {
				tt.setup(fx)
			}

			result, err := fx.service.CheckGuildAccess(ctx, "u1", "g1")
			require.NoError(t, err)
			assert.Equal(t, &entity.GuildAccessResult{GuildID: "g1", Allowed: tt.allowed}, result)
		})
	}
}

func TestGuildAccessService_CheckGuildAccess_AllowListFailureDenies(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
	fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).
		Return([]*entity.UpstreamGuild{{ID: "g1", Owner: true}}, nil)
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(nil, errors.New("db down")).Once()

	result, err := fx.service.CheckGuildAccess(ctx, "u1", "g1")
	require.NoError(t, err)
	assert.Equal(t, &entity.GuildAccessResult{GuildID: "g1", Allowed: false}, result)

	_, cached, err := fx.cache.Get(ctx, permissionKey("u1", "g1"))
	require.NoError(t, err)
	assert.False(t, cached, "a denial caused by a failed allow-list must not be cached")

	// Once the database is back, ownership is honored again.
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(nil, nil).Once()

	result, err = fx.service.CheckGuildAccess(ctx, "u1", "g1")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestGuildAccessService_CheckGuildAccess_CredentialRejected(t *testing.T) {
	fx := createTestGuildAccessService(t)
	ctx := context.Background()
	cred := validCredential("u1")

	fx.credentialRepo.EXPECT().FindByUserID(ctx, "u1").Return(cred, nil)
	fx.discord.EXPECT().UserGuilds(mock.Anything, cred.AccessToken).Return(nil, domainerrors.ErrCredentialExpired)
	fx.accessRepo.EXPECT().FindGrantedByUser(mock.Anything, "u1").Return(nil, nil).Maybe()

	result, err := fx.service.CheckGuildAccess(ctx, "u1", "g1")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialExpired)
}
