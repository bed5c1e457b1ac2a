package ports

import (
	"context"
	"time"
)

type TaskEventType string

const (
	TaskCreated TaskEventType = "created"
	TaskUpdated TaskEventType = "updated"
	TaskDeleted TaskEventType = "deleted"
)

// TaskEvent is a plain notification about a task lifecycle change.
type TaskEvent struct {
	Type       TaskEventType `json:"type"`
	TaskID     int64         `json:"task_id"`
	Fields     []string      `json:"fields,omitempty"` // changed columns on update
	OccurredAt time.Time     `json:"occurred_at"`
	RequestID  string        `json:"request_id,omitempty"`
}

// TaskEventPublisher announces task changes to other services. Delivery is
// best effort: callers log a failure and carry on.
type TaskEventPublisher interface {
	PublishTaskEvent(ctx context.Context, event TaskEvent) error
	Close() error
}
