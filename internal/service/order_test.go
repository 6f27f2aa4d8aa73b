package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/storefront/internal/errs"
	"github.com/deppfellow/storefront/internal/lib/job"
	"github.com/deppfellow/storefront/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "9b2d7c43-51f4-4e0a-a3c2-6f1e2d8b7a55"

func newOrderService(t *testing.T) (*OrderService, *mockOrderRepo, *mockEnqueuer) {
	t.Helper()
	logger := zerolog.Nop()
	repo, enqueuer := &mockOrderRepo{}, &mockEnqueuer{}
	t.Cleanup(func() {
		repo.AssertExpectations(t)
		enqueuer.AssertExpectations(t)
	})
	return NewOrderService(repo, enqueuer, &logger), repo, enqueuer
}

func statusTask(to, status string) any {
	return mock.MatchedBy(func(task *asynq.Task) bool {
		var p job.OrderStatusPayload
		if task.Type() != job.TaskOrderStatus || json.Unmarshal(task.Payload(), &p) != nil {
			return false
		}
		return p == job.OrderStatusPayload{To: to, OrderID: orderID, Status: status}
	})
}

func TestOrderService_CreateWithBuyerEmailEnqueuesOnce(t *testing.T) {
	svc, repo, enqueuer := newOrderService(t)
	email := "buyer@example.com"
	req := &model.CreateOrderRequest{ProductID: productID, BuyerEmail: &email}
	repo.On("Create", mock.Anything, req).Return(&model.Order{
		ID: orderID, ProductID: productID, Status: model.OrderStatusPending, Quantity: 1, BuyerEmail: &email,
	}, nil)
	enqueuer.On("EnqueueContext", mock.Anything, statusTask(email, "pending")).
		Return(&asynq.TaskInfo{ID: "task-1"}, nil).Once()

	order, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	enqueuer.AssertNumberOfCalls(t, "EnqueueContext", 1)
}

func TestOrderService_CreateWithoutBuyerEmailSkipsQueue(t *testing.T) {
	svc, repo, enqueuer := newOrderService(t)
	req := &model.CreateOrderRequest{ProductID: productID}
	repo.On("Create", mock.Anything, req).Return(&model.Order{ID: orderID, Status: model.OrderStatusPending}, nil)

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	enqueuer.AssertNotCalled(t, "EnqueueContext", mock.Anything, mock.Anything)
}

func TestOrderService_EnqueueFailureIsNotFatal(t *testing.T) {
	svc, repo, enqueuer := newOrderService(t)
	email := "buyer@example.com"
	req := &model.CreateOrderRequest{ProductID: productID, BuyerEmail: &email}
	repo.On("Create", mock.Anything, req).Return(&model.Order{ID: orderID, Status: model.OrderStatusPaid, BuyerEmail: &email}, nil)
	enqueuer.On("EnqueueContext", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

	order, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_EditStatusChangeNotifies(t *testing.T) {
	svc, repo, enqueuer := newOrderService(t)
	email := "buyer@example.com"
	shipped := model.OrderStatusShipped
	req := &model.EditOrderRequest{Status: &shipped}

	repo.On("Get", mock.Anything, orderID).Return(&model.Order{ID: orderID, Status: model.OrderStatusPaid, BuyerEmail: &email}, nil)
	repo.On("Edit", mock.Anything, orderID, req).Return(&model.Order{ID: orderID, Status: shipped, BuyerEmail: &email}, nil)
	enqueuer.On("EnqueueContext", mock.Anything, statusTask(email, "shipped")).Return(&asynq.TaskInfo{ID: "task-2"}, nil)

	order, err := svc.Edit(context.Background(), orderID, req)
	require.NoError(t, err)
	assert.Equal(t, shipped, order.Status)
}

func TestOrderService_EditSameStatusIsQuiet(t *testing.T) {
	svc, repo, enqueuer := newOrderService(t)
	email := "buyer@example.com"
	paid := model.OrderStatusPaid
	req := &model.EditOrderRequest{Status: &paid}

	repo.On("Get", mock.Anything, orderID).Return(&model.Order{ID: orderID, Status: paid, BuyerEmail: &email}, nil)
	repo.On("Edit", mock.Anything, orderID, req).Return(&model.Order{ID: orderID, Status: paid, BuyerEmail: &email}, nil)

	_, err := svc.Edit(context.Background(), orderID, req)
	require.NoError(t, err)
	enqueuer.AssertNotCalled(t, "EnqueueContext", mock.Anything, mock.Anything)
}

func TestOrderService_EditMissingIsNotFound(t *testing.T) {
	svc, repo, _ := newOrderService(t)
	quantity := 2
	req := &model.EditOrderRequest{Quantity: &quantity}
	repo.On("Edit", mock.Anything, "missing", req).Return(nil, nil)

	_, err := svc.Edit(context.Background(), "missing", req)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Order not found", httpErr.Message)
}

func TestOrderService_Destroy(t *testing.T) {
	svc, repo, _ := newOrderService(t)
	repo.On("Destroy", mock.Anything, orderID).Return(&model.Order{ID: orderID}, nil)
	repo.On("Destroy", mock.Anything, "missing").Return(nil, nil)

	order, err := svc.Destroy(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)

	order, err = svc.Destroy(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, order)
}
