package messaging

import (
	"context"

	"task-manager-api/domain/ports"
	"task-manager-api/pkg/logger"
)

// NoopTaskEventPublisher is used when NATS_URL is not configured.
type NoopTaskEventPublisher struct{}

func NewNoopTaskEventPublisher() *NoopTaskEventPublisher {
	return &NoopTaskEventPublisher{}
}

func (NoopTaskEventPublisher) PublishTaskEvent(ctx context.Context, event ports.TaskEvent) error {
	logger.DebugContext(ctx, "Task event (noop)", "type", event.Type, "task_id", event.TaskID)
	return nil
}

func (NoopTaskEventPublisher) Close() error { return nil }

var _ ports.TaskEventPublisher = (*NoopTaskEventPublisher)(nil)
