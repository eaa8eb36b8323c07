// Package live simulates the running minute of matches that are in play.
// No events are generated; only the displayed minute advances.
package live

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/okian/scoutboard/pkg/logger"
	"github.com/okian/scoutboard/pkg/metrics"
)

// MaxMinute is where a match clock stops.
const MaxMinute = 90

// Reasons a clock stops, used as metric labels.
const (
	reasonFullTime = "full_time"
	reasonStopped  = "stopped"
	reasonShutdown = "shutdown"
)

// Clock advances one match's minute on every tick until MaxMinute.
type Clock struct {
	matchID int
	label   string
	ticker  *clock.Ticker

	mu      sync.RWMutex
	minute  int
	running bool

	shutdown chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	onFinish func()

	logger logger.Logger
}

func newClock(c clock.Clock, matchID, start int, interval time.Duration, log logger.Logger, onFinish func()) *Clock {
	lc := &Clock{
		matchID:  matchID,
		label:    strconv.Itoa(matchID),
		minute:   min(start, MaxMinute),
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		onFinish: onFinish,
		logger:   log.With(logger.Int("match_id", matchID)),
	}
	if lc.minute >= MaxMinute {
		close(lc.done)
		return lc
	}
	// The ticker is created before the goroutine starts so no tick is lost.
	lc.ticker = c.Ticker(interval)
	lc.running = true
	return lc
}

// MatchID returns the match this clock belongs to.
func (c *Clock) MatchID() int { return c.matchID }

// Minute returns the displayed match minute.
func (c *Clock) Minute() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.minute
}

// Running reports whether the clock is still ticking.
func (c *Clock) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}

// run ticks until full time, Shutdown or ctx cancellation.
func (c *Clock) run(ctx context.Context) {
	defer close(c.done)
	defer c.ticker.Stop()

	metrics.UpdateLiveMinute(c.label, c.Minute())
	for {
		select {
		case <-ctx.Done():
			c.finish(ctx, reasonShutdown)
			return
		case <-c.shutdown:
			c.finish(ctx, reasonStopped)
			return
		case <-c.ticker.C:
			if c.advance() >= MaxMinute {
				c.finish(ctx, reasonFullTime)
				return
			}
		}
	}
}

func (c *Clock) advance() int {
	c.mu.Lock()
	c.minute++
	m := c.minute
	c.mu.Unlock()

	metrics.RecordLiveTick(c.label, m)
	return m
}

func (c *Clock) finish(ctx context.Context, reason string) {
	c.mu.Lock()
	c.running = false
	m := c.minute
	c.mu.Unlock()

	metrics.RecordLiveClockStopped(reason)
	if c.onFinish != nil {
		c.onFinish()
	}
	c.logger.Debug(ctx, "match clock stopped", logger.String("reason", reason), logger.Int("minute", m))
}

// Shutdown stops the clock and waits for its goroutine to exit.
func (c *Clock) Shutdown(ctx context.Context) error {
	c.stopOnce.Do(func() { close(c.shutdown) })

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		c.logger.Warn(ctx, "clock shutdown timed out")
		return fmt.Errorf("clock %d shutdown timed out: %w", c.matchID, ctx.Err())
	}
}
