// Package refresh periodically reloads the dashboard config from its remote
// source.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/robfig/cron/v3"
)

// Loader is the part of the config store the service drives
type Loader interface {
	Load(ctx context.Context) models.AppConfig
}

// Service runs Loader.Load on a cron schedule
type Service struct {
	loader   Loader
	schedule string
	timeout  time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	ctx     context.Context
	entryID cron.EntryID
	done    chan struct{}
}

// NewService creates a refresh service. timeout bounds each run and is
// ignored when zero.
func NewService(loader Loader, schedule string, timeout time.Duration) *Service {
	return &Service{
		loader:   loader,
		schedule: schedule,
		timeout:  timeout,
	}
}

// Start registers the job and starts the scheduler. Runs stop being
// scheduled when ctx is cancelled or Stop is called.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return fmt.Errorf("refresh service already started")
	}

	c := cron.New()
	id, err := c.AddFunc(s.schedule, s.run)
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.schedule, err)
	}

	done := make(chan struct{})
	s.cron = c
	s.ctx = ctx
	s.entryID = id
	s.done = done
	c.Start()
	debug.Info("Config refresh service started with schedule: %s", s.schedule)

	go func() {
		select {
		case <-ctx.Done():
			debug.Info("Config refresh service context cancelled, stopping...")
			s.Stop()
		case <-done:
		}
	}()
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish. It is
// safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	c, done := s.cron, s.done
	s.cron, s.done = nil, nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	close(done)
	<-c.Stop().Done()
	debug.Info("Config refresh service stopped")
}

// Next returns the time of the next scheduled refresh, zero when stopped.
func (s *Service) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// RunOnce performs a single refresh.
func (s *Service) RunOnce(ctx context.Context) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	debug.Debug("Running scheduled config refresh...")
	s.loader.Load(ctx)
	debug.Debug("Scheduled config refresh completed")
}

func (s *Service) run() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}
	s.RunOnce(ctx)
}
