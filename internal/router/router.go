// Package router builds the Echo instance: it installs the middleware
// chain and the global error handler and maps every route to its handler.
package router

import (
	"net/http"

	"github.com/deppfellow/storefront/internal/handler"
	"github.com/deppfellow/storefront/internal/middleware"
	"github.com/deppfellow/storefront/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	r.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Instrument(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	if middlewares.RateLimit.Enabled() {
		r.Use(middlewares.RateLimit.Limiter())
	}

	registerSystemRoutes(r, s, h, middlewares)
	registerProductRoutes(r, h.Product)
	registerOrderRoutes(r, h.Order)

	return r
}

func registerProductRoutes(r *echo.Echo, h *handler.ProductHandler) {
	routes := h.Routes()

	products := r.Group("/products")
	products.GET("", routes.List)
	products.POST("", routes.Create)
	products.GET("/:id", routes.Get)
	products.Match([]string{http.MethodPut, http.MethodPatch}, "/:id", routes.Edit)
	products.DELETE("/:id", routes.Delete)
}

func registerOrderRoutes(r *echo.Echo, h *handler.OrderHandler) {
	routes := h.Routes()

	orders := r.Group("/orders")
	orders.GET("", routes.List)
	orders.POST("", routes.Create)
	orders.Match([]string{http.MethodPut, http.MethodPatch}, "/:id", routes.Edit)
	orders.DELETE("/:id", routes.Delete)
}
