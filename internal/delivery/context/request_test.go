package context

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithIdentity_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithLogger(context.Background(), base.With(slog.String("request_id", "req-1")))
	ctx = WithIdentity(ctx, "80351110224678912", slog.Default())

	userID, ok := UserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "80351110224678912", userID)

	GetLoggerOrDefault(ctx, slog.Default()).Warn("source unavailable")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "80351110224678912", line["user_id"])
}

func TestWithIdentity_UsesFallbackWithoutRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithIdentity(context.Background(), "u1", fallback)
	GetLoggerOrDefault(ctx, nil).Info("hello")

	assert.Contains(t, buf.String(), `"user_id":"u1"`)
}

func TestUserIDFromContext_Missing(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserIDFromContext(context.WithValue(context.Background(), userIDKey, ""))
	assert.False(t, ok)
}

func TestSetRequestID_ReachesRequestContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))

	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))
	assert.Equal(t, "req-42", RequestIDFromContext(c.Request().Context()))
}
