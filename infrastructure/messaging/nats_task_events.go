package messaging

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"

	"task-manager-api/domain/ports"
	"task-manager-api/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NATSTaskEventPublisher publishes task events on core NATS subjects
// "<prefix>.<type>", e.g. tasks.created.
type NATSTaskEventPublisher struct {
	nc     *nats.Conn
	prefix string
}

type NATSConfig struct {
	URL           string
	SubjectPrefix string
}

func NewNATSTaskEventPublisher(cfg NATSConfig) (*NATSTaskEventPublisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name("task-manager-api"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return NewNATSTaskEventPublisherFromConn(nc, cfg.SubjectPrefix), nil
}

func NewNATSTaskEventPublisherFromConn(nc *nats.Conn, prefix string) *NATSTaskEventPublisher {
	if prefix == "" {
		prefix = "tasks"
	}
	return &NATSTaskEventPublisher{nc: nc, prefix: prefix}
}

func (p *NATSTaskEventPublisher) Subject(t ports.TaskEventType) string {
	return p.prefix + "." + string(t)
}

func (p *NATSTaskEventPublisher) PublishTaskEvent(ctx context.Context, event ports.TaskEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	subject := p.Subject(event.Type)
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	logger.DebugContext(ctx, "Task event published", "subject", subject, "task_id", event.TaskID)
	return nil
}

func (p *NATSTaskEventPublisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}

var _ ports.TaskEventPublisher = (*NATSTaskEventPublisher)(nil)
