package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/channel-lens/channel-analyzer-go/pkg/logger"
)

// Client enqueues snapshot-persistence tasks.
type Client struct {
	asynqClient *asynq.Client
}

// NewClient creates a queue client from a redis URL.
func NewClient(redisURL string) (*Client, error) {
	redisOpt, err := ParseRedisURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	return &Client{asynqClient: asynq.NewClient(redisOpt)}, nil
}

// Close closes the client connection.
func (c *Client) Close() error {
	return c.asynqClient.Close()
}

// EnqueueStoreSnapshot enqueues a task persisting a completed analysis.
func (c *Client) EnqueueStoreSnapshot(payload *StoreSnapshotPayload) error {
	data, err := payload.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeStoreSnapshot, data)

	info, err := c.asynqClient.Enqueue(task,
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
		asynq.Queue("default"),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	logger.Log.Info("enqueued snapshot persistence",
		zap.String("channel_id", payload.ChannelID),
		zap.String("task_id", info.ID),
	)

	return nil
}
