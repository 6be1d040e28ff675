// Package cleanup enforces data retention on the append-only tables.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/elliotbonneville/silt/pkg/services"
)

// Config holds the retention knobs. A retention of zero days disables pruning
// for that table.
type Config struct {
	EventRetentionDays int
	LogRetentionDays   int
	Interval           time.Duration
}

// Service periodically prunes old game events and player logs. All
// operations are idempotent and safe to run from multiple replicas.
type Service struct {
	cfg    Config
	events *services.EventService
	logs   *services.PlayerLogService

	cancel context.CancelFunc
	done   chan struct{}

	now func() time.Time
}

// NewService creates a new cleanup service.
func NewService(cfg Config, events *services.EventService, logs *services.PlayerLogService) *Service {
	return &Service{
		cfg:    cfg,
		events: events,
		logs:   logs,
		now:    time.Now,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_retention_days", s.cfg.EventRetentionDays,
		"log_retention_days", s.cfg.LogRetentionDays,
		"interval", s.cfg.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.pruneEvents(ctx)
	s.pruneLogs(ctx)
}

func (s *Service) pruneEvents(ctx context.Context) {
	if s.cfg.EventRetentionDays <= 0 {
		return
	}
	cutoff := s.now().AddDate(0, 0, -s.cfg.EventRetentionDays)
	count, err := s.events.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: event prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old events", "count", count)
	}
}

func (s *Service) pruneLogs(ctx context.Context) {
	if s.cfg.LogRetentionDays <= 0 {
		return
	}
	cutoff := s.now().AddDate(0, 0, -s.cfg.LogRetentionDays)
	count, err := s.logs.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: player log prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old player logs", "count", count)
	}
}
