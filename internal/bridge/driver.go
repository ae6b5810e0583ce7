// Package bridge runs the polling loop that turns vendor poll reports into
// published state changes, and provides the two publisher variants: live
// telemetry lines and a virtual evdev gamepad.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhignight2004/ProjectBlu360/internal/usbx"
	"github.com/jhignight2004/ProjectBlu360/pkg/x360"
)

// DefaultInterval is the delay between polls. A rate limit, not a
// correctness requirement.
const DefaultInterval = 2 * time.Millisecond

// Publisher consumes a decoded state. The driver invokes it only when the
// state differs from the previously published one.
type Publisher interface {
	Publish(x360.State) error
}

// Phase is the driver's lifecycle state.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseArmed
	PhasePolling
	PhaseTerminated
)

// Driver owns the poll loop and the last published state. It is not safe
// for concurrent use; exactly one transport read is in flight at a time.
type Driver struct {
	Transport usbx.Transport
	Publisher Publisher
	Interval  time.Duration
	Logger    *slog.Logger

	phase Phase
	prev  x360.State
	seen  bool // false until the first publish, so an all-zero state still publishes
}

// Phase returns the driver's current lifecycle phase.
func (d *Driver) Phase() Phase { return d.phase }

// Run arms the stream and polls until the context is cancelled or the
// transport fails fatally. Timeouts, stalls and short reports skip the
// cycle; publish failures are logged and the cycle's state is retried on
// the next poll. Only a fatal transport error returns one.
func (d *Driver) Run(ctx context.Context) error {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	interval := d.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	if err := d.Transport.Arm(); err != nil {
		// The device tolerates polling without a prior arm; reports may just
		// be stale until one succeeds.
		logger.Warn("arm command failed, polling anyway", slog.Any("error", err))
	} else {
		d.phase = PhaseArmed
	}
	d.phase = PhasePolling

	buf := make([]byte, x360.ReportLen)
	for {
		if ctx.Err() != nil {
			d.phase = PhaseTerminated
			return nil
		}

		n, err := d.Transport.ReadReport(buf)
		if err != nil {
			if usbx.Recoverable(err) {
				logger.Debug("no report this cycle", slog.Any("error", err))
				if !sleep(ctx, interval) {
					d.phase = PhaseTerminated
					return nil
				}
				continue
			}
			d.phase = PhaseTerminated
			return fmt.Errorf("read report: %w", err)
		}

		next, err := x360.Decode(buf[:n])
		if err != nil {
			if !errors.Is(err, x360.ErrShortReport) {
				logger.Warn("undecodable report", slog.Any("error", err))
			}
			if !sleep(ctx, interval) {
				d.phase = PhaseTerminated
				return nil
			}
			continue
		}

		if !d.seen || !next.Equal(d.prev) {
			if err := d.Publisher.Publish(next); err != nil {
				logger.Warn("publish failed", slog.Any("error", err))
			} else {
				d.prev = next
				d.seen = true
			}
		}

		if !sleep(ctx, interval) {
			d.phase = PhaseTerminated
			return nil
		}
	}
}

// sleep waits for the inter-poll delay; returns false when the context
// ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
