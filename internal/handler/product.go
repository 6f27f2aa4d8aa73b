package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/storefront/internal/model"
	"github.com/deppfellow/storefront/internal/server"
	"github.com/labstack/echo/v4"
)

type ProductService interface {
	List(ctx context.Context, f model.ProductFilter) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	Edit(ctx context.Context, id string, req *model.EditProductRequest) (*model.Product, error)
	Destroy(ctx context.Context, id string) (*model.DeleteResult, error)
}

type ProductHandler struct {
	Handler
	products ProductService
}

func NewProductHandler(s *server.Server, products ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context, req *model.ListProductsRequest) ([]model.Product, error) {
	return h.products.List(c.Request().Context(), req.ProductFilter)
}

// GetProduct answers an unknown id with echo.ErrNotFound so the client
// gets the same response as for an unknown route.
func (h *ProductHandler) GetProduct(c echo.Context, req *model.GetProductRequest) (*model.Product, error) {
	product, err := h.products.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, echo.ErrNotFound
	}
	return product, nil
}

func (h *ProductHandler) CreateProduct(c echo.Context, req *model.CreateProductRequest) (*model.Product, error) {
	return h.products.Create(c.Request().Context(), req)
}

func (h *ProductHandler) EditProduct(c echo.Context, req *model.EditProductRequest) (*model.Product, error) {
	return h.products.Edit(c.Request().Context(), req.ID, req)
}

func (h *ProductHandler) DeleteProduct(c echo.Context, req *model.DeleteProductRequest) (*model.DeleteResult, error) {
	return h.products.Destroy(c.Request().Context(), req.ID)
}

// Routes returns the typed endpoints wrapped for Echo.
func (h *ProductHandler) Routes() ProductRoutes {
	return ProductRoutes{
		List:   Handle(h.Handler, h.ListProducts, http.StatusOK, model.NewListProductsRequest),
		Get:    Handle(h.Handler, h.GetProduct, http.StatusOK, newReq[model.GetProductRequest]),
		Create: Handle(h.Handler, h.CreateProduct, http.StatusOK, newReq[model.CreateProductRequest]),
		Edit:   Handle(h.Handler, h.EditProduct, http.StatusOK, newReq[model.EditProductRequest]),
		Delete: Handle(h.Handler, h.DeleteProduct, http.StatusOK, newReq[model.DeleteProductRequest]),
	}
}

type ProductRoutes struct {
	List, Get, Create, Edit, Delete echo.HandlerFunc
}

// newReq allocates a zero request payload.
func newReq[T any]() *T {
	return new(T)
}
