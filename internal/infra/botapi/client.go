// Package botapi implements the BotService port against the bot's internal HTTP API.
package botapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"dashboard/config"
	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
)

const (
	guildsPath   = "/api/guilds"
	headerAPIKey = "X-Api-Key"

	// Error bodies are only read for the log line.
	maxErrorBody = 1 << 10
)

type guildsResponse struct {
	Guilds []*entity.BotGuild `json:"guilds"`
}

// client calls the bot service over plain HTTP.
type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the BotService from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.BotService, error) {
	if cfg.BotService.BaseURL == "" {
		return nil, errors.New("bot service base url is required")
	}

	return newClient(cfg.BotService.BaseURL, cfg.BotService.APIKey, &http.Client{
		Timeout: cfg.BotService.RequestTimeout,
	}, logger), nil
}

func newClient(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Guilds lists every guild the bot is installed in.
func (c *client) Guilds(ctx context.Context) ([]*entity.BotGuild, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+guildsPath, http.NoBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	if requestID := deliverycontext.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "bot service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		deliverycontext.GetLoggerOrDefault(ctx, c.logger).Warn("Bot service returned error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return nil, errors.Errorf("bot service returned non-success status: %d", resp.StatusCode)
	}

	var payload guildsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode bot service guilds")
	}

	guilds := make([]*entity.BotGuild, 0, len(payload.Guilds))
	for _, g := range payload.Guilds {
		if g == nil || g.ID == "" {
			continue
		}
		guilds = append(guilds, g)
	}

	return guilds, nil
}
