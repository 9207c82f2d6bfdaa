package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"foodgram-backend/internal/config"
)

// Client wraps the asynq producer so services depend on a narrow
// Enqueue interface instead of the broker client.
type Client struct {
	inner *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		inner: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) Enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := c.inner.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}

	log.Debug().
		Str("task_type", task.Type()).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("Task enqueued")
	return nil
}

func (c *Client) Close() error {
	return c.inner.Close()
}

// RedisConnOpt builds the broker options shared by the worker server
func RedisConnOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}
