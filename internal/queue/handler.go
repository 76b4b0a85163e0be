package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/channel-lens/channel-analyzer-go/internal/db/repository"
	"github.com/channel-lens/channel-analyzer-go/pkg/logger"
)

// SnapshotHandler processes snapshot-persistence tasks.
type SnapshotHandler struct {
	snapshotRepo repository.SnapshotRepository
}

// NewSnapshotHandler creates a snapshot task handler.
func NewSnapshotHandler(snapshotRepo repository.SnapshotRepository) *SnapshotHandler {
	return &SnapshotHandler{snapshotRepo: snapshotRepo}
}

// ProcessTask implements asynq.Handler for TypeStoreSnapshot.
func (h *SnapshotHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	payload, err := UnmarshalStoreSnapshotPayload(task.Payload())
	if err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	snapshot := payload.snapshot()
	if err := h.snapshotRepo.Create(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	logger.Log.Info("snapshot stored",
		zap.String("snapshot_id", snapshot.ID.String()),
		zap.String("channel_id", snapshot.ChannelID),
	)

	return nil
}

// SyncStore persists snapshots directly, bypassing the queue. It is the
// persistence path when no redis URL is configured.
type SyncStore struct {
	snapshotRepo repository.SnapshotRepository
}

// NewSyncStore creates a synchronous snapshot store.
func NewSyncStore(snapshotRepo repository.SnapshotRepository) *SyncStore {
	return &SyncStore{snapshotRepo: snapshotRepo}
}

// EnqueueStoreSnapshot stores the snapshot immediately.
func (s *SyncStore) EnqueueStoreSnapshot(payload *StoreSnapshotPayload) error {
	snapshot := payload.snapshot()
	if err := s.snapshotRepo.Create(context.Background(), snapshot); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	logger.Log.Info("snapshot stored synchronously",
		zap.String("snapshot_id", snapshot.ID.String()),
		zap.String("channel_id", snapshot.ChannelID),
	)

	return nil
}

// Server wraps the asynq worker server.
type Server struct {
	asynqServer *asynq.Server
	mux         *asynq.ServeMux
}

// NewServer builds an asynq server with the snapshot handler registered.
func NewServer(redisURL string, concurrency int, handler *SnapshotHandler) (*Server, error) {
	redisOpt, err := ParseRedisURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 10,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Log.Error("task failed",
					zap.String("type", task.Type()),
					zap.Error(err),
				)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(TypeStoreSnapshot, handler)

	return &Server{
		asynqServer: srv,
		mux:         mux,
	}, nil
}

// Run starts processing tasks and blocks until Shutdown.
func (s *Server) Run() error {
	return s.asynqServer.Run(s.mux)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() {
	s.asynqServer.Shutdown()
}
