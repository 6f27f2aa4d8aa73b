package service

import (
	"context"

	"github.com/deppfellow/storefront/internal/errs"
	"github.com/deppfellow/storefront/internal/lib/job"
	"github.com/deppfellow/storefront/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type OrderRepository interface {
	List(ctx context.Context, f model.OrderFilter) ([]model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)
	Edit(ctx context.Context, id string, req *model.EditOrderRequest) (*model.Order, error)
	Destroy(ctx context.Context, id string) (*model.Order, error)
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type OrderService struct {
	repo     OrderRepository
	enqueuer TaskEnqueuer
	logger   *zerolog.Logger
}

func NewOrderService(repo OrderRepository, enqueuer TaskEnqueuer, logger *zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, enqueuer: enqueuer, logger: logger}
}

func (s *OrderService) List(ctx context.Context, f model.OrderFilter) ([]model.Order, error) {
	return s.repo.List(ctx, f)
}

func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	order, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Str("product_id", order.ProductID).Msg("order created")
	s.notify(ctx, order)
	return order, nil
}

// Edit applies the change-set and notifies the buyer when the status moved.
func (s *OrderService) Edit(ctx context.Context, id string, req *model.EditOrderRequest) (*model.Order, error) {
	var previous model.OrderStatus
	if req.Status != nil {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if current != nil {
			previous = current.Status
		}
	}

	order, err := s.repo.Edit(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errs.NewNotFoundError("Order not found", false, nil)
	}

	if req.Status != nil && order.Status != previous {
		s.notify(ctx, order)
	}
	return order, nil
}

// Destroy returns the deleted order, or nil when it did not exist.
func (s *OrderService) Destroy(ctx context.Context, id string) (*model.Order, error) {
	return s.repo.Destroy(ctx, id)
}

// notify queues a status email for orders that carry a buyer address.
// Queue failures are logged; the order change itself already succeeded.
func (s *OrderService) notify(ctx context.Context, order *model.Order) {
	if order.BuyerEmail == nil || *order.BuyerEmail == "" {
		return
	}

	task, err := job.NewOrderStatusTask(*order.BuyerEmail, order.ID, string(order.Status))
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to build order status task")
		return
	}

	info, err := s.enqueuer.EnqueueContext(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to enqueue order status email")
		return
	}

	s.logger.Debug().Str("order_id", order.ID).Str("task_id", info.ID).Msg("enqueued order status email")
}
