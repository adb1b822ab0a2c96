package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "dashboard/internal/delivery/context"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	"golang.org/x/sync/errgroup"
)

// Decision reasons, reported as the metric label.
const (
	reasonCache        = "cache"
	reasonAllowList    = "allow-list"
	reasonOwner        = "owner"
	reasonNoRoleRules  = "no-role-rules"
	reasonRoleMatch    = "role"
	reasonResolveError = "error"
	reasonDefaultDeny  = "default-deny"
)

type verdict int

const (
	verdictContinue verdict = iota
	verdictAllow
	verdictDeny
)

// permissionRequest carries what is already known about one (identity, guild) pair.
type permissionRequest struct {
	UserID  string
	GuildID string
	Granted bool // explicit allow-list row
	Owner   bool // Discord owner flag

	appRoles map[string]struct{}
}

// accessRule is one step of the permission chain. Steps run in order and the
// first one that does not return verdictContinue decides.
type accessRule interface {
	name() string
	evaluate(ctx context.Context, req *permissionRequest) (verdict, error)
}

type allowListRule struct{}

func (allowListRule) name() string { return reasonAllowList }

func (allowListRule) evaluate(_ context.Context, req *permissionRequest) (verdict, error) {
	if req.Granted {
		return verdictAllow, nil
	}

	return verdictContinue, nil
}

type ownerRule struct{}

func (ownerRule) name() string { return reasonOwner }

func (ownerRule) evaluate(_ context.Context, req *permissionRequest) (verdict, error) {
	if req.Owner {
		return verdictAllow, nil
	}

	return verdictContinue, nil
}

// appRolesRule loads the roles that may use the app. A guild with none
// configured is open to every member who reaches this step.
type appRolesRule struct {
	roleRepo repository.RolePermissionRepository
}

func (appRolesRule) name() string { return reasonNoRoleRules }

func (r appRolesRule) evaluate(ctx context.Context, req *permissionRequest) (verdict, error) {
	rules, err := r.roleRepo.FindAppRolesByGuild(ctx, req.GuildID)
	if err != nil {
		return verdictDeny, err
	}

	req.appRoles = make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		if rule.CanUseApp {
			req.appRoles[rule.RoleID] = struct{}{}
		}
	}
	if len(req.appRoles) == 0 {
		return verdictAllow, nil
	}

	return verdictContinue, nil
}

// memberRoleRule asks Discord for the member's roles, the most expensive step.
type memberRoleRule struct {
	discord service.DiscordService
}

func (memberRoleRule) name() string { return reasonRoleMatch }

func (r memberRoleRule) evaluate(ctx context.Context, req *permissionRequest) (verdict, error) {
	roles, err := r.discord.MemberRoles(ctx, req.GuildID, req.UserID)
	if err != nil {
		return verdictDeny, err
	}

	for _, role := range roles {
		if _, ok := req.appRoles[role]; ok {
			return verdictAllow, nil
		}
	}

	return verdictDeny, nil
}

// permissionResolver decides per-guild access and caches every decision,
// denials included.
type permissionResolver struct {
	rules          []accessRule
	cache          service.CacheStore
	metrics        service.Metrics
	logger         *slog.Logger
	ttl            time.Duration
	resolveTimeout time.Duration
	maxConcurrency int
}

func newPermissionResolver(
	roleRepo repository.RolePermissionRepository,
	discord service.DiscordService,
	cache service.CacheStore,
	metrics service.Metrics,
	logger *slog.Logger,
	ttl, resolveTimeout time.Duration,
	maxConcurrency int,
) *permissionResolver {
	return &permissionResolver{
		rules: []accessRule{
			allowListRule{},
			ownerRule{},
			appRolesRule{roleRepo: roleRepo},
			memberRoleRule{discord: discord},
		},
		cache:          cache,
		metrics:        metrics,
		logger:         logger,
		ttl:            ttl,
		resolveTimeout: resolveTimeout,
		maxConcurrency: maxConcurrency,
	}
}

// Resolve decides a single guild, short-circuiting on a cached decision.
func (r *permissionResolver) Resolve(ctx context.Context, req *permissionRequest) bool {
	key := permissionKey(req.UserID, req.GuildID)

	raw, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log(ctx).Warn("Permission cache read failed, treating as miss", slog.String("key", key), slog.Any("error", err))
	}
	if allowed, hit := r.decodeCached(ctx, key, raw, ok && err == nil); hit {
		return allowed
	}

	allowed, cacheable := r.decide(ctx, req)
	if cacheable {
		r.store(ctx, []service.CacheEntry{r.entry(req, allowed)})
	}

	return allowed
}

// ResolveAll decides every guild in reqs concurrently and returns the allowed
// guild ids. One guild failing only denies that guild.
func (r *permissionResolver) ResolveAll(ctx context.Context, reqs []*permissionRequest) map[string]bool {
	allowed := make(map[string]bool, len(reqs))
	if len(reqs) == 0 {
		return allowed
	}

	keys := make([]string, len(reqs))
	for i, req := range reqs {
		keys[i] = permissionKey(req.UserID, req.GuildID)
	}

	cached, err := r.cache.MGet(ctx, keys)
	if err != nil {
		r.log(ctx).Warn("Permission cache batch read failed, resolving all", slog.Any("error", err))
		cached = nil
	}

	decisions := make([]bool, len(reqs))
	cacheable := make([]bool, len(reqs))

	var g errgroup.Group
	if r.maxConcurrency > 0 {
		g.SetLimit(r.maxConcurrency)
	}

	for i, req := range reqs {
		raw, ok := cached[keys[i]]
		if value, hit := r.decodeCached(ctx, keys[i], raw, ok); hit {
			decisions[i] = value

			continue
		}

		g.Go(func() error {
			decisions[i], cacheable[i] = r.decide(ctx, req)

			return nil
		})
	}
	_ = g.Wait()

	entries := make([]service.CacheEntry, 0, len(reqs))
	for i, req := range reqs {
		if cacheable[i] {
			entries = append(entries, r.entry(req, decisions[i]))
		}
		if decisions[i] {
			allowed[req.GuildID] = true
		}
	}
	r.store(ctx, entries)

	return allowed
}

// decide runs the rule chain. Any error or panic resolves to deny. The
// decision is not cacheable only when the caller's own context ended.
func (r *permissionResolver) decide(ctx context.Context, req *permissionRequest) (allowed, cacheable bool) {
	reason := reasonResolveError

	defer func() {
		if p := recover(); p != nil {
			r.logResolveError(ctx, req, errors.Errorf("panic: %v", p))
			allowed, cacheable, reason = false, true, reasonResolveError
		}
		r.metrics.PermissionDecision(reason, allowed)
	}()

	resolveCtx := ctx
	if r.resolveTimeout > 0 {
		var cancel context.CancelFunc
		resolveCtx, cancel = context.WithTimeout(ctx, r.resolveTimeout)
		defer cancel()
	}

	for _, rule := range r.rules {
		v, err := rule.evaluate(resolveCtx, req)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return false, false
			}
			r.logResolveError(ctx, req, err)

			return false, true
		case v == verdictContinue:
			continue
		default:
			reason = rule.name()

			return v == verdictAllow, true
		}
	}

	reason = reasonDefaultDeny

	return false, true
}

func (r *permissionResolver) decodeCached(ctx context.Context, key string, raw []byte, ok bool) (allowed, hit bool) {
	if !ok {
		r.metrics.CacheLookup(dataClassPermission, false)

		return false, false
	}

	if err := json.Unmarshal(raw, &allowed); err != nil {
		r.log(ctx).Warn("Cached permission is corrupt, treating as miss", slog.String("key", key), slog.Any("error", err))
		r.metrics.CacheLookup(dataClassPermission, false)

		return false, false
	}

	r.metrics.CacheLookup(dataClassPermission, true)
	r.metrics.PermissionDecision(reasonCache, allowed)

	return allowed, true
}

func (r *permissionResolver) entry(req *permissionRequest, allowed bool) service.CacheEntry {
	raw, _ := json.Marshal(allowed)

	return service.CacheEntry{
		Key:   permissionKey(req.UserID, req.GuildID),
		Value: raw,
		TTL:   r.ttl,
	}
}

func (r *permissionResolver) store(ctx context.Context, entries []service.CacheEntry) {
	if len(entries) == 0 {
		return
	}

	if err := r.cache.MSet(ctx, entries); err != nil {
		r.log(ctx).Warn("Permission cache write failed", slog.Int("entries", len(entries)), slog.Any("error", err))
	}
}

func (r *permissionResolver) logResolveError(ctx context.Context, req *permissionRequest, err error) {
	resolveErr := &domainerrors.PermissionResolutionError{GuildID: req.GuildID, Err: err}
	r.log(ctx).Warn("Permission resolution failed, denying guild",
		slog.String("guild_id", req.GuildID),
		slog.Any("error", resolveErr),
	)
}

func (r *permissionResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}
