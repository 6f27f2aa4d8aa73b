// Package handler is the HTTP layer behind the router.
//
// It binds and validates requests with the validation package, calls the
// services and writes JSON responses. Errors go to the global error
// handler except where an endpoint renders its own outcome.
package handler

import (
	"github.com/deppfellow/storefront/internal/server"
	"github.com/deppfellow/storefront/internal/service"
)

type Handlers struct {
	Root    *RootHandler
	Product *ProductHandler
	Order   *OrderHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:    NewRootHandler(s),
		Product: NewProductHandler(s, services.Product),
		Order:   NewOrderHandler(s, services.Order),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
