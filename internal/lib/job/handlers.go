package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

func (j *JobService) handleOrderStatusTask(ctx context.Context, t *asynq.Task) error {
	var p OrderStatusPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// malformed payloads never succeed, don't retry them
		return fmt.Errorf("failed to unmarshal order status payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskOrderStatus).
		Str("order_id", p.OrderID).
		Str("status", p.Status).
		Logger()

	log.Info().Msg("processing order status email task")

	if err := j.mailer.SendOrderStatusEmail(ctx, p.To, p.OrderID, p.Status); err != nil {
		log.Error().Err(err).Msg("failed to send order status email")
		return err
	}

	log.Info().Msg("sent order status email")
	return nil
}
