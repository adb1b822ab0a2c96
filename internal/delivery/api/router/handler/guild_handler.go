package handler

import (
	"log/slog"
	"net/http"

	"dashboard/config"
	"dashboard/internal/delivery/api/middleware"
	"dashboard/internal/delivery/api/response"
	"dashboard/internal/domain/entity"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GuildHandlerParams holds dependencies for GuildHandler, injected by Fx.
type GuildHandlerParams struct {
	fx.In

	GuildUC usecase.GuildUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// GuildHandler serves the dashboard's guild list and per-guild access checks
type GuildHandler struct {
	guildUC       usecase.GuildUsecase
	loginRedirect string
	logger        *slog.Logger
}

// NewGuildHandler is the constructor for GuildHandler
func NewGuildHandler(params GuildHandlerParams) *GuildHandler {
	return &GuildHandler{
		guildUC:       params.GuildUC,
		loginRedirect: params.Config.Auth.LoginRedirectURL,
		logger:        params.Logger,
	}
}

// GuildListResponse is the body of the guild list endpoint.
// The dashboard reads guilds at the top level, so it is not wrapped in the data envelope.
type GuildListResponse struct {
	Guilds []*entity.EnrichedGuildSummary `json:"guilds"`
}

// GuildAccessRequest identifies the guild of an access check
type GuildAccessRequest struct {
	GuildID string `param:"guildId" validate:"required,snowflake"`
}

// ListGuilds returns every guild the signed-in user may manage
func (h *GuildHandler) ListGuilds(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Reauthenticate(c, "SESSION_INVALID", "Session is missing or invalid, please sign in again", h.loginRedirect)
	}

	guilds, err := h.guildUC.ListAccessibleGuilds(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err, h.loginRedirect)
	}
	if guilds == nil {
		guilds = []*entity.EnrichedGuildSummary{}
	}

	return c.JSON(http.StatusOK, GuildListResponse{Guilds: guilds})
}

// CheckGuildAccess reports whether the signed-in user may manage one guild
func (h *GuildHandler) CheckGuildAccess(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Reauthenticate(c, "SESSION_INVALID", "Session is missing or invalid, please sign in again", h.loginRedirect)
	}

	var req GuildAccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid guild id")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Guild id must be a Discord snowflake")
	}

	result, err := h.guildUC.CheckGuildAccess(c.Request().Context(), userID, req.GuildID)
	if err != nil {
		return response.HandleAppError(c, err, h.loginRedirect)
	}

	return c.JSON(http.StatusOK, result)
}
