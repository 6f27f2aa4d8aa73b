package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// QueueDefault is the only queue the worker server polls.
const QueueDefault = "default"

// TaskOrderStatus notifies a buyer about an order status change.
const TaskOrderStatus = "email:order_status"

// OrderStatusPayload is the JSON payload of a TaskOrderStatus task.
type OrderStatusPayload struct {
	To      string `json:"to"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// NewOrderStatusTask builds the task with three retries on the default
// queue and a 30 second handler timeout.
func NewOrderStatusTask(to, orderID, status string) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderStatusPayload{
		To:      to,
		OrderID: orderID,
		Status:  status,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskOrderStatus,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}
