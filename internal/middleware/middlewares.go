// Package middleware holds the Echo middleware that wraps every route:
// request ids, the request-scoped logger, request logging, CORS, panic
// recovery, New Relic tracing, Prometheus metrics, rate limiting and the
// global error handler.
package middleware

import (
	"github.com/deppfellow/storefront/internal/server"
)

// Middlewares groups the middleware components built once at start-up.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
	Metrics         *MetricsMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
		Metrics:         NewMetricsMiddleware(),
	}
}
