package router

import (
	"github.com/deppfellow/storefront/internal/handler"
	"github.com/deppfellow/storefront/internal/middleware"
	"github.com/deppfellow/storefront/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes maps the landing page, health, metrics and docs.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers, m *middleware.Middlewares) {
	r.GET("/", h.Root.ServeIndex)
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", m.Metrics.Handler())

	r.Static("/static", s.Config.Server.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
