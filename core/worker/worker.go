package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"court-reservation-api/core/config"
	"court-reservation-api/core/logger"

	"github.com/hibiken/asynq"
)

// Enqueuer schedules background tasks. Modules depend on this, not on asynq.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload any) error
}

type Client struct {
	client *asynq.Client
}

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{client: asynq.NewClient(RedisOpt(cfg))}
}

func (c *Client) Enqueue(ctx context.Context, taskType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}
	info, err := c.client.EnqueueContext(ctx, asynq.NewTask(taskType, body), asynq.MaxRetry(5))
	if err != nil {
		logger.Error("Worker:Enqueue:Error:", "type", taskType, "error", err)
		return err
	}
	logger.Info("Worker:Enqueue", "type", taskType, "id", info.ID, "queue", info.Queue)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// NopEnqueuer drops tasks. Used when Redis is not configured.
type NopEnqueuer struct{}

func (NopEnqueuer) Enqueue(ctx context.Context, taskType string, payload any) error {
	logger.Warn("Worker:Enqueue:Skipped", "type", taskType)
	return nil
}

func NewServer(cfg config.Config) *asynq.Server {
	concurrency := cfg.Worker.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	return asynq.NewServer(RedisOpt(cfg.Redis), asynq.Config{
		Concurrency: concurrency,
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Worker:Task:Error:", "type", task.Type(), "error", err)
		}),
	})
}

// Decode unmarshals a task payload, marking bad payloads as non-retryable.
func Decode(task *asynq.Task, dest any) error {
	if err := json.Unmarshal(task.Payload(), dest); err != nil {
		return fmt.Errorf("decode %s: %v: %w", task.Type(), err, asynq.SkipRetry)
	}
	return nil
}
