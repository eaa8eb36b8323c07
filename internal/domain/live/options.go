package live

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/okian/scoutboard/pkg/logger"
)

// Option applies a configuration option to the Tracker.
type Option func(*Tracker)

// WithClock sets the time source, mainly so tests can use clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(t *Tracker) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithTickInterval sets how often a live clock advances by one minute.
func WithTickInterval(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithStartMinute sets the minute new clocks start from.
func WithStartMinute(minute int) Option {
	return func(t *Tracker) {
		if minute >= 0 {
			t.startMinute = minute
		}
	}
}

// WithLogger sets a custom logger for the tracker.
func WithLogger(l logger.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}
