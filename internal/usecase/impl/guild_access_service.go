// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"dashboard/config"
	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// GuildAccessParams holds dependencies for the guild access service, injected by Fx.
type GuildAccessParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	Cache          service.CacheStore
	Metrics        service.Metrics
	Discord        service.DiscordService
	Bot            service.BotService
	CredentialRepo repository.CredentialRepository
	AccessRepo     repository.AccessControlRepository
	RoleRepo       repository.RolePermissionRepository
	GroupRepo      repository.GuildGroupRepository
}

// guildAccessService implements the GuildUsecase interface.
type guildAccessService struct {
	credentialRepo repository.CredentialRepository
	fetchers       *sourceFetchers
	resolver       *permissionResolver
	logger         *slog.Logger
	now            func() time.Time
}

// NewGuildAccessService is the constructor for guildAccessService.
func NewGuildAccessService(params GuildAccessParams) usecase.GuildUsecase {
	cacheCfg := params.Config.Cache
	accessCfg := params.Config.Access

	deps := fetcherDeps{
		cache:        params.Cache,
		metrics:      params.Metrics,
		logger:       params.Logger,
		singleFlight: cacheCfg.SingleFlight,
		loadTimeout:  cacheCfg.LoadTimeout,
	}

	return &guildAccessService{
		credentialRepo: params.CredentialRepo,
		fetchers: newSourceFetchers(
			cacheCfg.TTL, deps,
			params.Discord, params.Bot, params.AccessRepo, params.GroupRepo,
		),
		resolver: newPermissionResolver(
			params.RoleRepo, params.Discord, params.Cache, params.Metrics, params.Logger,
			cacheCfg.TTL.Permission, accessCfg.ResolveTimeout, accessCfg.MaxConcurrency,
		),
		logger: params.Logger,
		now:    time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *guildAccessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccessibleGuilds runs the whole pipeline: load sources, pick candidates,
// resolve permissions, attach groups and merge.
func (srv *guildAccessService) ListAccessibleGuilds(ctx context.Context, userID string) ([]*entity.EnrichedGuildSummary, error) {
	cred, err := srv.loadCredential(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		userGuilds []*entity.UpstreamGuild
		botGuilds  []*entity.BotGuild
		allowList  []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		guilds, err := srv.fetchers.UserGuilds(gctx, cred)
		if err != nil {
			return srv.degrade(ctx, err)
		}
		userGuilds = guilds

		return nil
	})
	g.Go(func() error {
		guilds, err := srv.fetchers.BotGuilds(gctx)
		if err != nil {
			return srv.degrade(ctx, err)
		}
		botGuilds = guilds

		return nil
	})
	g.Go(func() error {
		ids, err := srv.fetchers.AllowList(gctx, userID)
		if err != nil {
			return srv.degrade(ctx, err)
		}
		allowList = ids

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	botByID := make(map[string]*entity.BotGuild, len(botGuilds))
	for _, bot := range botGuilds {
		botByID[bot.ID] = bot
	}

	granted := make(map[string]bool, len(allowList))
	for _, id := range allowList {
		granted[id] = true
	}

	// Only guilds Discord shows and the allow-list names are candidates.
	candidates := make([]*permissionRequest, 0, len(granted))
	for _, guild := range userGuilds {
		if !granted[guild.ID] {
			continue
		}
		candidates = append(candidates, &permissionRequest{
			UserID:  userID,
			GuildID: guild.ID,
			Granted: true,
			Owner:   guild.Owner,
		})
	}

	allowed := srv.resolver.ResolveAll(ctx, candidates)

	allowedIDs := make([]string, 0, len(allowed))
	for _, guild := range userGuilds {
		if allowed[guild.ID] {
			allowedIDs = append(allowedIDs, guild.ID)
		}
	}

	groups, err := srv.fetchers.GroupInfo(ctx, allowedIDs)
	if err != nil {
		srv.log(ctx).Warn("Group info unavailable, returning guilds without groups", slog.Any("error", err))
		groups = nil
	}

	summaries := mergeGuilds(userGuilds, allowed, botByID, groups)

	srv.log(ctx).Debug("Resolved accessible guilds",
		slog.Int("user_guilds", len(userGuilds)),
		slog.Int("candidates", len(candidates)),
		slog.Int("allowed", len(allowedIDs)),
		slog.Int("returned", len(summaries)),
	)

	return summaries, nil
}

// CheckGuildAccess decides one guild the identity can see on Discord.
// Unlike the list, a guild without an allow-list row still goes through the
// owner and role steps.
func (srv *guildAccessService) CheckGuildAccess(ctx context.Context, userID, guildID string) (*entity.GuildAccessResult, error) {
	cred, err := srv.loadCredential(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		userGuilds     []*entity.UpstreamGuild
		allowList      []string
		allowListReady bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		guilds, err := srv.fetchers.UserGuilds(gctx, cred)
		if err != nil {
			return srv.degrade(ctx, err)
		}
		userGuilds = guilds

		return nil
	})
	g.Go(func() error {
		ids, err := srv.fetchers.AllowList(gctx, userID)
		if err != nil {
			return srv.degrade(ctx, err)
		}
		allowList = ids
		allowListReady = true

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &entity.GuildAccessResult{GuildID: guildID}

	// Without the allow-list nothing may be granted, and the denial is not
	// cached so access comes back as soon as the database does.
	if !allowListReady {
		return result, nil
	}

	var member *entity.UpstreamGuild
	for _, guild := range userGuilds {
		if guild.ID == guildID {
			member = guild

			break
		}
	}
	if member == nil {
		return result, nil
	}

	req := &permissionRequest{
		UserID:  userID,
		GuildID: guildID,
		Owner:   member.Owner,
	}
	for _, id := range allowList {
		if id == guildID {
			req.Granted = true

			break
		}
	}

	result.Allowed = srv.resolver.Resolve(ctx, req)

	return result, nil
}

// loadCredential reads the stored Discord token. Missing means the session
// is unusable, past expiry means Discord would reject it anyway.
func (srv *guildAccessService) loadCredential(ctx context.Context, userID string) (*entity.DiscordCredential, error) {
	cred, err := srv.credentialRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("no discord credential stored")
		}

		return nil, errors.Wrap(err, "failed to load discord credential")
	}

	if cred.Expired(srv.now()) {
		return nil, domainerrors.ErrCredentialExpired.WrapMessage("stored discord credential expired")
	}

	return cred, nil
}

// degrade turns a source failure into an empty contribution. Only a rejected
// credential is returned, which cancels the sibling fetches.
func (srv *guildAccessService) degrade(ctx context.Context, err error) error {
	if domainerrors.RequiresReauth(err) {
		return err
	}

	source := "unknown"
	if upstreamErr, ok := errors.AsType[*domainerrors.UpstreamUnavailableError](err); ok {
		source = upstreamErr.Source
	}
	srv.log(ctx).Warn("Data source unavailable, continuing without it",
		slog.String("source", source),
		slog.Any("error", err),
	)

	return nil
}
