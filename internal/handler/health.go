package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/storefront/internal/middleware"
	"github.com/deppfellow/storefront/internal/server"
	"github.com/labstack/echo/v4"
)

// DefaultHealthCheckTimeout bounds each dependency ping when the config
// does not set one.
const DefaultHealthCheckTimeout = 5 * time.Second

// dependencyCheck pings one dependency. Required checks make the whole
// service unhealthy when they fail.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// HealthHandler reports whether the service and its dependencies respond.
type HealthHandler struct {
	Handler
	checks []dependencyCheck
}

// NewHealthHandler registers the checks named in observability.health_checks.
// The database is required; Redis is reported only.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}

	for _, name := range s.Config.Observability.HealthChecks.Checks {
		switch name {
		case "database":
			if s.DB != nil {
				h.checks = append(h.checks, dependencyCheck{name: name, required: true, ping: s.DB.Pool.Ping})
			}
		case "redis":
			if s.Redis != nil {
				h.checks = append(h.checks, dependencyCheck{name: name, ping: func(ctx context.Context) error {
					return s.Redis.Ping(ctx).Err()
				}})
			}
		}
	}
	return h
}

// CheckHealth answers 200 when every required dependency responds and 503
// otherwise. Each check reports its status and response time.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	cfg := h.server.Config.Observability.HealthChecks
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultHealthCheckTimeout
	}

	checks := make(map[string]any, len(h.checks))
	isHealthy := true

	if cfg.Enabled {
		for _, check := range h.checks {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			checkStart := time.Now()
			err := check.ping(ctx)
			elapsed := time.Since(checkStart)
			cancel()

			if err != nil {
				checks[check.name] = map[string]any{
					"status":        "unhealthy",
					"response_time": elapsed.String(),
					"error":         err.Error(),
				}
				if check.required {
					isHealthy = false
				}

				logger.Error().
					Err(err).
					Str("check", check.name).
					Dur("response_time", elapsed).
					Msg("health check failed")

				h.recordFailure(map[string]any{
					"check_type":       check.name,
					"operation":        "health_check",
					"error_type":       check.name + "_unhealthy",
					"response_time_ms": elapsed.Milliseconds(),
					"error_message":    err.Error(),
				})
				continue
			}

			checks[check.name] = map[string]any{
				"status":        "healthy",
				"response_time": elapsed.String(),
			}
		}
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		h.recordFailure(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(attrs map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
