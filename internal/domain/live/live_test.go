package live_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/scoutboard/internal/domain/live"
	"github.com/okian/scoutboard/pkg/logger"
)

func init() {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

// eventually polls cond in real time; clock.Mock delivers ticks on a channel
// that the clock goroutine drains asynchronously.
func eventually(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}

func tick(mock *clock.Mock, c *live.Clock, want int) bool {
	mock.Add(time.Minute)
	return eventually(func() bool { return c.Minute() == want })
}

func TestTrackerDefaults(t *testing.T) {
	Convey("Given a tracker with default options", t, func() {
		mock := clock.NewMock()
		tr := live.NewTracker(live.WithClock(mock))
		ctx := context.Background()
		defer func() { _ = tr.Close(ctx) }()

		Convey("When a live match is started", func() {
			c := tr.Start(ctx, 1)

			Convey("Then it should start at minute 59", func() {
				So(c.Minute(), ShouldEqual, 59)
				So(c.Running(), ShouldBeTrue)
				So(tr.Minute(1), ShouldEqual, 59)
				So(tr.Running(), ShouldEqual, 1)
			})

			Convey("Then one minute of clock time should advance it by one", func() {
				So(tick(mock, c, 60), ShouldBeTrue)
				So(tick(mock, c, 61), ShouldBeTrue)
			})

			Convey("Then starting it again should return the same clock", func() {
				So(tr.Start(ctx, 1), ShouldEqual, c)
				So(tr.Running(), ShouldEqual, 1)
			})
		})

		Convey("When a match is not tracked", func() {
			So(tr.Minute(2), ShouldEqual, 0)
			_, ok := tr.Clock(2)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestClockCapsAtFullTime(t *testing.T) {
	Convey("Given a clock two minutes from full time", t, func() {
		mock := clock.NewMock()
		tr := live.NewTracker(live.WithClock(mock), live.WithStartMinute(88), live.WithTickInterval(30*time.Second))
		ctx := context.Background()
		defer func() { _ = tr.Close(ctx) }()

		c := tr.Start(ctx, 3)

		Convey("When enough time passes", func() {
			mock.Add(30 * time.Second)
			So(eventually(func() bool { return c.Minute() == 89 }), ShouldBeTrue)
			mock.Add(30 * time.Second)

			Convey("Then it should stop at 90", func() {
				So(eventually(func() bool { return !c.Running() }), ShouldBeTrue)
				So(c.Minute(), ShouldEqual, live.MaxMinute)
				So(eventually(func() bool { return tr.Running() == 0 }), ShouldBeTrue)

				mock.Add(5 * time.Minute)
				So(c.Minute(), ShouldEqual, live.MaxMinute)
			})
		})
	})

	Convey("Given a start minute past full time", t, func() {
		tr := live.NewTracker(live.WithClock(clock.NewMock()), live.WithStartMinute(95))
		c := tr.Start(context.Background(), 1)

		Convey("Then the clock should show 90 and never run", func() {
			So(c.Minute(), ShouldEqual, live.MaxMinute)
			So(c.Running(), ShouldBeFalse)
			So(tr.Running(), ShouldEqual, 0)
			So(c.Shutdown(context.Background()), ShouldBeNil)
		})
	})
}

func TestTrackerStop(t *testing.T) {
	Convey("Given a running clock", t, func() {
		mock := clock.NewMock()
		tr := live.NewTracker(live.WithClock(mock))
		ctx := context.Background()
		c := tr.Start(ctx, 1)

		Convey("When the match is stopped", func() {
			So(tr.Stop(ctx, 1), ShouldBeNil)

			Convey("Then the clock should be torn down and forgotten", func() {
				So(c.Running(), ShouldBeFalse)
				So(tr.Running(), ShouldEqual, 0)
				So(tr.Minute(1), ShouldEqual, 0)

				mock.Add(time.Minute)
				So(c.Minute(), ShouldEqual, 59)
			})

			Convey("Then stopping again should be a no-op", func() {
				So(tr.Stop(ctx, 1), ShouldBeNil)
				So(c.Shutdown(ctx), ShouldBeNil)
			})
		})

		Convey("When the tracker is closed", func() {
			tr.Start(ctx, 2)
			So(tr.Running(), ShouldEqual, 2)
			So(tr.Close(ctx), ShouldBeNil)

			Convey("Then every clock should be stopped", func() {
				So(tr.Running(), ShouldEqual, 0)
				So(c.Running(), ShouldBeFalse)
			})
		})
	})

	Convey("Given a clock bound to a cancelled context", t, func() {
		tr := live.NewTracker(live.WithClock(clock.NewMock()))
		ctx, cancel := context.WithCancel(context.Background())
		c := tr.Start(ctx, 7)
		cancel()

		Convey("Then it should stop on its own", func() {
			So(eventually(func() bool { return !c.Running() }), ShouldBeTrue)
			So(eventually(func() bool { return tr.Running() == 0 }), ShouldBeTrue)
		})
	})
}
