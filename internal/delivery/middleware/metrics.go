package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware records request latency per route and status.
type MetricsMiddleware struct {
	duration *prometheus.HistogramVec
}

// NewMetricsMiddleware registers the request histogram on registry.
func NewMetricsMiddleware(registry prometheus.Registerer) *MetricsMiddleware {
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status",
			// The guild list fans out to Discord on a cold cache.
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status"},
	)
	registry.MustRegister(duration)

	return &MetricsMiddleware{duration: duration}
}

// Handle observes every request, including ones answered by the error handler.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		m.duration.WithLabelValues(
			c.Request().Method,
			c.Path(),
			strconv.Itoa(responseStatus(c, err)),
		).Observe(time.Since(start).Seconds())

		return err
	}
}

// responseStatus is the status the client will see. An error that has not been
// written yet is rendered by the central error handler after the middleware returns.
func responseStatus(c echo.Context, err error) int {
	res := c.Response()
	if err == nil || res.Committed {
		return res.Status
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
