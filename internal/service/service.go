// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// requests from the handlers, applies the business rules and calls the
// repositories, the product cache and the job queue.
package service

import (
	"github.com/deppfellow/storefront/internal/repository"
	"github.com/deppfellow/storefront/internal/server"
)

type Services struct {
	Product *ProductService
	Order   *OrderService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	cache := NewRedisProductCache(s.Redis, s.Config.Redis.ProductCacheTTL)

	return &Services{
		Product: NewProductService(repos.Product, cache, s.Logger),
		Order:   NewOrderService(repos.Order, s.Job.Client, s.Logger),
	}
}
