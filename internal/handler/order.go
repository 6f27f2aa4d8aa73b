package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/deppfellow/storefront/internal/middleware"
	"github.com/deppfellow/storefront/internal/model"
	"github.com/deppfellow/storefront/internal/server"
	"github.com/deppfellow/storefront/internal/validation"
	"github.com/labstack/echo/v4"
)

type OrderService interface {
	List(ctx context.Context, f model.OrderFilter) ([]model.Order, error)
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)
	Edit(ctx context.Context, id string, req *model.EditOrderRequest) (*model.Order, error)
	Destroy(ctx context.Context, id string) (*model.Order, error)
}

type OrderHandler struct {
	Handler
	orders OrderService
}

func NewOrderHandler(s *server.Server, orders OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	return h.orders.Create(c.Request().Context(), req)
}

func (h *OrderHandler) ListOrders(c echo.Context, req *model.ListOrdersRequest) ([]model.Order, error) {
	return h.orders.List(c.Request().Context(), req.OrderFilter)
}

func (h *OrderHandler) EditOrder(c echo.Context, req *model.EditOrderRequest) (*model.Order, error) {
	return h.orders.Edit(c.Request().Context(), req.ID, req)
}

// DeleteOrder renders all three outcomes itself instead of going through
// the global error handler. Only a request that fails to bind falls back to it.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	req := &model.DeleteOrderRequest{}
	if err := validation.BindAndValidate(c, req); err != nil {
		return err
	}

	id := req.ID
	logger := middleware.GetLogger(c).With().Str("order_id", id).Logger()

	order, err := h.orders.Destroy(c.Request().Context(), id)
	if err != nil {
		logger.Error().Err(err).Msg("failed to delete order")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "An error occurred while deleting the order",
		})
	}

	if order == nil {
		logger.Info().Msg("order to delete not found")
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("Order with ID %s not found", id),
		})
	}

	logger.Info().Msg("order deleted")
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Order with ID %s deleted successfully", id),
	})
}

func (h *OrderHandler) Routes() OrderRoutes {
	return OrderRoutes{
		List:   Handle(h.Handler, h.ListOrders, http.StatusOK, model.NewListOrdersRequest),
		Create: Handle(h.Handler, h.CreateOrder, http.StatusOK, newReq[model.CreateOrderRequest]),
		Edit:   Handle(h.Handler, h.EditOrder, http.StatusOK, newReq[model.EditOrderRequest]),
		Delete: h.DeleteOrder,
	}
}

type OrderRoutes struct {
	List, Create, Edit, Delete echo.HandlerFunc
}
