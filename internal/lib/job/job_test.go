package job

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendOrderStatusEmail(ctx context.Context, to, orderID, status string) error {
	return m.Called(ctx, to, orderID, status).Error(0)
}

func newTestService(m Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: m, logger: &logger}
}

func TestNewOrderStatusTask(t *testing.T) {
	task, err := NewOrderStatusTask("buyer@example.com", "order-1", "shipped")
	require.NoError(t, err)

	assert.Equal(t, TaskOrderStatus, task.Type())

	var p OrderStatusPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, OrderStatusPayload{To: "buyer@example.com", OrderID: "order-1", Status: "shipped"}, p)
	assert.JSONEq(t, `{"to":"buyer@example.com","orderId":"order-1","status":"shipped"}`, string(task.Payload()))
}

func TestHandleOrderStatusTask(t *testing.T) {
	m := &mockMailer{}
	m.On("SendOrderStatusEmail", mock.Anything, "buyer@example.com", "order-1", "paid").Return(nil)

	task, err := NewOrderStatusTask("buyer@example.com", "order-1", "paid")
	require.NoError(t, err)

	err = newTestService(m).Mux().ProcessTask(context.Background(), task)
	assert.NoError(t, err)
	m.AssertExpectations(t)
}

func TestHandleOrderStatusTask_SendFailureRetries(t *testing.T) {
	m := &mockMailer{}
	m.On("SendOrderStatusEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("provider down"))

	task, err := NewOrderStatusTask("buyer@example.com", "order-1", "paid")
	require.NoError(t, err)

	err = newTestService(m).handleOrderStatusTask(context.Background(), task)
	assert.ErrorContains(t, err, "provider down")
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleOrderStatusTask_BadPayloadSkipsRetry(t *testing.T) {
	m := &mockMailer{}
	task := asynq.NewTask(TaskOrderStatus, []byte("{not json"))

	err := newTestService(m).handleOrderStatusTask(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	m.AssertNotCalled(t, "SendOrderStatusEmail")
}

func TestAsynqLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	newAsynqLogger(&logger).Warn("lease expired for ", 3, " tasks")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "asynq", entry["component"])
	assert.Equal(t, "lease expired for 3 tasks", entry["message"])
}
