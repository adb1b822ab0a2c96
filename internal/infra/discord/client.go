// Package discord implements the DiscordService port on top of discordgo's REST client.
package discord

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dashboard/config"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/fx"
)

const maxPageSize = 200

var errBotTokenMissing = errors.New("discord bot token is not configured")

type client struct {
	httpClient *http.Client
	bot        *discordgo.Session
	pageSize   int
	timeout    time.Duration
	logger     *slog.Logger
}

// ClientParams holds dependencies for the Discord client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the DiscordService used by the access pipeline.
func NewClient(params ClientParams) (service.DiscordService, error) {
	cfg := params.Config.Discord
	if cfg.BotToken == "" {
		params.Logger.Warn("Discord bot token not configured, role based access will deny")
	}

	return newClient(cfg.BotToken, cfg.PageSize, cfg.RequestTimeout, &http.Client{}, params.Logger)
}

func newClient(botToken string, pageSize int, timeout time.Duration, httpClient *http.Client, logger *slog.Logger) (*client, error) {
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	c := &client{
		httpClient: httpClient,
		pageSize:   pageSize,
		timeout:    timeout,
		logger:     logger,
	}

	if botToken != "" {
		bot, err := c.session("Bot " + botToken)
		if err != nil {
			return nil, err
		}
		c.bot = bot
	}

	return c, nil
}

// session builds a REST-only session. No gateway connection is opened.
func (c *client) session(token string) (*discordgo.Session, error) {
	s, err := discordgo.New(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create discord session")
	}
	s.Client = c.httpClient
	s.ShouldRetryOnRateLimit = true
	s.MaxRestRetries = 1

	return s, nil
}

// UserGuilds pages through /users/@me/guilds with the identity's OAuth token.
func (c *client) UserGuilds(ctx context.Context, accessToken string) ([]*entity.UpstreamGuild, error) {
	s, err := c.session("Bearer " + accessToken)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var (
		guilds []*entity.UpstreamGuild
		after  string
	)
	for {
		page, err := s.UserGuilds(c.pageSize, "", after, false, discordgo.WithContext(ctx))
		if err != nil {
			if isUnauthorized(err) {
				return nil, domainerrors.ErrCredentialExpired.WrapMessage("discord rejected user token")
			}

			return nil, errors.Wrap(err, "failed to list user guilds")
		}

		for _, g := range page {
			guilds = append(guilds, &entity.UpstreamGuild{
				ID:          g.ID,
				Name:        g.Name,
				Icon:        g.Icon,
				Owner:       g.Owner,
				Permissions: g.Permissions,
			})
		}

		if len(page) < c.pageSize {
			return guilds, nil
		}
		after = page[len(page)-1].ID
	}
}

// MemberRoles fetches the member object with the bot token. A user who is no
// longer in the guild holds no roles.
func (c *client) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	if c.bot == nil {
		return nil, errBotTokenMissing
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	member, err := c.bot.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return []string{}, nil
		}

		return nil, errors.Wrapf(err, "failed to get member %s of guild %s", userID, guildID)
	}

	return member.Roles, nil
}

func (c *client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.timeout)
}

func isUnauthorized(err error) bool {
	return errors.Is(err, discordgo.ErrUnauthorized) || statusCode(err) == http.StatusUnauthorized
}

func statusCode(err error) int {
	restErr, ok := errors.AsType[*discordgo.RESTError](err)
	if !ok || restErr.Response == nil {
		return 0
	}

	return restErr.Response.StatusCode
}
