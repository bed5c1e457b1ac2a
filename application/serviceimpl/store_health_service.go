package serviceimpl

import (
	"context"
	"time"

	"task-manager-api/pkg/logger"
	"task-manager-api/pkg/scheduler"
)

const storeHealthJobID = "store_health"

// StoreHealthRecorder receives the outcome of each scheduled ping.
type StoreHealthRecorder interface {
	RecordStoreCheck(ok bool)
}

type StoreHealthConfig struct {
	CheckCron   string
	PingTimeout time.Duration
}

// StoreHealthService pings the task store on a schedule so an outage shows up
// in logs and metrics before a request hits it.
type StoreHealthService struct {
	config    StoreHealthConfig
	ping      func(ctx context.Context) error
	recorder  StoreHealthRecorder
	scheduler scheduler.EventScheduler
}

func NewStoreHealthService(
	config StoreHealthConfig,
	ping func(ctx context.Context) error,
	recorder StoreHealthRecorder,
	eventScheduler scheduler.EventScheduler,
) *StoreHealthService {
	if config.PingTimeout <= 0 {
		config.PingTimeout = 5 * time.Second
	}

	return &StoreHealthService{
		config:    config,
		ping:      ping,
		recorder:  recorder,
		scheduler: eventScheduler,
	}
}

// Enabled reports whether a check schedule is configured. An empty
// expression turns the job off.
func (s *StoreHealthService) Enabled() bool {
	return s.config.CheckCron != ""
}

func (s *StoreHealthService) RegisterJob() error {
	if !s.Enabled() {
		return nil
	}
	return s.scheduler.AddJob(storeHealthJobID, s.config.CheckCron, func() {
		s.RunCheck(context.Background())
	})
}

// RunCheck pings once and reports whether the store answered.
func (s *StoreHealthService) RunCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.config.PingTimeout)
	defer cancel()

	err := s.ping(ctx)
	if s.recorder != nil {
		s.recorder.RecordStoreCheck(err == nil)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Task store health check failed", "error", err)
		return false
	}

	logger.DebugContext(ctx, "Task store health check passed")
	return true
}
