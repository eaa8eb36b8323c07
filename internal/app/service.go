// Package service provides the scouting service that implements the
// dependencies required by the HTML views and the JSON API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	repository "github.com/okian/scoutboard/internal/adapters/repository"
	"github.com/okian/scoutboard/internal/domain/live"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/pkg/logger"
	"github.com/okian/scoutboard/pkg/metrics"
)

const shutdownTimeout = 5 * time.Second

// Service serves read models built from the catalog and the live clocks.
type Service struct {
	mu sync.RWMutex

	// Core components
	store   repository.Store
	tracker *live.Tracker
	clock   clock.Clock

	// Configuration
	tickInterval time.Duration
	startMinute  int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore injects a catalog instead of the bundled seed data.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithClock sets the time source for live clocks and contract alerts.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLiveTickInterval sets how often a live match advances one minute.
func WithLiveTickInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.tickInterval = d
		}
	}
}

// WithLiveStartMinute sets the minute live matches show at startup.
func WithLiveStartMinute(minute int) Option {
	return func(s *Service) {
		if minute >= 0 && minute <= live.MaxMinute {
			s.startMinute = minute
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		clock:        clock.New(),
		tickInterval: time.Minute,
		startMinute:  59,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the catalog and starts a clock for every live match. The
// clocks run until ctx is cancelled or Stop is called.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting scouting service...")

	if s.store == nil {
		store, err := repository.NewMemStore()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStart, err)
		}
		s.store = store
	}

	matches, err := s.store.Matches(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStart, err)
	}

	s.tracker = live.NewTracker(
		live.WithClock(s.clock),
		live.WithTickInterval(s.tickInterval),
		live.WithStartMinute(s.startMinute),
		live.WithLogger(s.logger.Named("live")),
	)
	for _, m := range matches {
		if m.Status == model.StatusLive {
			s.tracker.Start(ctx, m.ID)
		}
	}

	players, total := s.store.Count(ctx)
	s.started = true
	s.logger.Info(ctx, "scouting service started",
		logger.Int("players", players),
		logger.Int("matches", total),
		logger.Int("liveClocks", s.tracker.Running()),
	)

	return nil
}

// Stop tears down the live clocks.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info(ctx, "stopping scouting service...")

	if err := s.tracker.Close(ctx); err != nil {
		s.logger.Warn(ctx, "live clocks did not stop cleanly", logger.Error(err))
	}

	s.started = false
	s.logger.Info(ctx, "scouting service stopped")
}

// components returns the store and tracker under the read lock.
func (s *Service) components() (repository.Store, *live.Tracker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, ErrNotStarted
	}
	return s.store, s.tracker, nil
}

// Now returns the service's notion of the current time.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"liveTickInterval": s.tickInterval.String(),
		"liveStartMinute":  s.startMinute,
	}

	if s.started {
		players, matches := s.store.Count(context.Background())
		running := s.tracker.Running()

		stats["players"] = players
		stats["matches"] = matches
		stats["liveClocks"] = running

		metrics.UpdateCatalogSize(players, matches)
		metrics.UpdateLiveClocks(running)
	}

	return stats
}
