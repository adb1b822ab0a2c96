// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dashboard/internal/delivery/api/middleware"
	"dashboard/internal/delivery/api/router/handler"
	"dashboard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GuildHandler   *handler.GuildHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	guildHandler   *handler.GuildHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		guildHandler:   params.GuildHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require a session

	guildsGroup := apiV1.Group("/guilds")
	{
		guildsGroup.GET("", r.guildHandler.ListGuilds)
		guildsGroup.GET("/:guildId/access", r.guildHandler.CheckGuildAccess)
	}
}
