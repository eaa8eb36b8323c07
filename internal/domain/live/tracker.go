package live

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/okian/scoutboard/pkg/logger"
	"github.com/okian/scoutboard/pkg/metrics"
)

// Default tracker configuration.
const (
	defaultTickInterval = time.Minute
	defaultStartMinute  = 59
)

// Tracker owns one Clock per live match.
type Tracker struct {
	clock       clock.Clock
	interval    time.Duration
	startMinute int

	mu      sync.Mutex
	clocks  map[int]*Clock
	running atomic.Int64

	logger logger.Logger
}

// NewTracker creates a tracker with configuration options.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		clock:       clock.New(),
		interval:    defaultTickInterval,
		startMinute: defaultStartMinute,
		clocks:      make(map[int]*Clock),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logger.Get().Named("live")
	}
	return t
}

// Start begins ticking for a match. Starting an already tracked match
// returns its existing clock.
func (t *Tracker) Start(ctx context.Context, matchID int) *Clock {
	t.mu.Lock()
	defer t.mu.Unlock()

	if c, ok := t.clocks[matchID]; ok {
		return c
	}

	c := newClock(t.clock, matchID, t.startMinute, t.interval, t.logger, t.clockFinished)
	t.clocks[matchID] = c
	if c.Running() {
		metrics.UpdateLiveClocks(int(t.running.Add(1)))
		go c.run(ctx)
	}

	t.logger.Info(ctx, "match clock started",
		logger.Int("match_id", matchID),
		logger.Int("minute", c.Minute()),
		logger.Duration("interval", t.interval),
	)
	return c
}

func (t *Tracker) clockFinished() {
	metrics.UpdateLiveClocks(int(t.running.Add(-1)))
}

// Clock returns the clock of a tracked match.
func (t *Tracker) Clock(matchID int) (*Clock, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.clocks[matchID]
	return c, ok
}

// Minute returns the current minute of a tracked match, 0 otherwise.
func (t *Tracker) Minute(matchID int) int {
	if c, ok := t.Clock(matchID); ok {
		return c.Minute()
	}
	return 0
}

// Running returns the number of clocks still ticking.
func (t *Tracker) Running() int {
	return int(t.running.Load())
}

// Stop tears down the clock of one match, e.g. when it leaves live.
func (t *Tracker) Stop(ctx context.Context, matchID int) error {
	t.mu.Lock()
	c, ok := t.clocks[matchID]
	delete(t.clocks, matchID)
	t.mu.Unlock()

	if !ok {
		return nil
	}
	return c.Shutdown(ctx)
}

// Close tears down every clock.
func (t *Tracker) Close(ctx context.Context) error {
	t.mu.Lock()
	clocks := t.clocks
	t.clocks = make(map[int]*Clock)
	t.mu.Unlock()

	var errs []error
	for _, c := range clocks {
		if err := c.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
