package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard/config"
	"dashboard/internal/delivery/api/middleware"
	"dashboard/internal/delivery/api/router/handler"
	"dashboard/internal/delivery/api/validator"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
	servicemocks "dashboard/internal/mocks/service"
	usecasemocks "dashboard/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho(t *testing.T) (*echo.Echo, *usecasemocks.MockGuildUsecase, *servicemocks.MockTokenService) {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{LoginRedirectURL: "/login", CookieName: "session"}}
	guildUC := usecasemocks.NewMockGuildUsecase(t)
	tokenSvc := servicemocks.NewMockTokenService(t)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "router_test_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	r := NewRouter(RouterParams{
		GuildHandler: handler.NewGuildHandler(handler.GuildHandlerParams{
			GuildUC: guildUC,
			Config:  cfg,
			Logger:  slog.Default(),
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: tokenSvc,
			Config:       cfg,
			Logger:       slog.Default(),
		}),
		Registry: registry,
	})

	e := echo.New()
	e.Validator = validator.New()
	r.RegisterRoutes(e)

	return e, guildUC, tokenSvc
}

func TestRouter_PublicRoutes(t *testing.T) {
	e, _, _ := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "router_test_total 1")
}

func TestRouter_GuildRoutesRequireSession(t *testing.T) {
	e, _, _ := newTestEcho(t)

	for _, path := range []string{"/api/v1/guilds", "/api/v1/guilds/41771983423143937/access"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `"redirect":"/login"`, path)
	}
}

func TestRouter_GuildAccess(t *testing.T) {
	e, guildUC, tokenSvc := newTestEcho(t)

	tokenSvc.EXPECT().ValidateToken("token").
		Return(&service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "80351110224678912"}}, nil).Once()
	guildUC.EXPECT().CheckGuildAccess(mock.Anything, "80351110224678912", "41771983423143937").
		Return(&entity.GuildAccessResult{GuildID: "41771983423143937", Allowed: true}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guilds/41771983423143937/access", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"guildId":"41771983423143937","allowed":true}`, rec.Body.String())
}
