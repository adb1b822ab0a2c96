package middleware

import (
	"log/slog"
	"strings"

	"dashboard/config"
	"dashboard/internal/delivery/api/response"
	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthMiddleware validates the session issued by the auth service.
type AuthMiddleware struct {
	tokenSvc      service.TokenService
	cookieName    string
	loginRedirect string
	logger        *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:      params.TokenService,
		cookieName:    params.Config.Auth.CookieName,
		loginRedirect: params.Config.Auth.LoginRedirectURL,
		logger:        params.Logger,
	}
}

// Authenticate accepts the session from the Authorization header or the
// session cookie and stores the Discord user id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return response.Reauthenticate(c, "SESSION_MISSING", "Sign in to continue", m.loginRedirect)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected session token",
				slog.Any("error", err),
			)

			return response.Reauthenticate(c, "SESSION_INVALID", "Session is missing or invalid, please sign in again", m.loginRedirect)
		}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), claims.Subject, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found {
			return ""
		}

		return strings.TrimSpace(token)
	}

	if m.cookieName == "" {
		return ""
	}
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// GetUserID returns the authenticated Discord user id.
// It must be used behind Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.UserIDFromContext(c.Request().Context())
}
