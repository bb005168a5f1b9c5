// Package poll runs fixed-interval background refreshers with explicit
// cancellation. Each runner owns its goroutine; Stop always wins over
// the next tick, and a slow run never overlaps the next one.
package poll

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Runner invokes fn every interval until Stop is called.
type Runner struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *zap.Logger

	sf     singleflight.Group
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner creates a runner. Start must be called to begin polling.
func NewRunner(name string, interval time.Duration, fn func(ctx context.Context) error, logger *zap.Logger) *Runner {
	return &Runner{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger,
	}
}

// Start launches the polling goroutine. The first run happens
// immediately, then every interval. Calling Start twice is a no-op.
func (r *Runner) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)

		r.run(ctx)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.run(ctx)
			}
		}
	}()
}

// run executes fn, coalescing concurrent invocations (Trigger during a
// tick shares the in-flight call instead of stacking a second one).
func (r *Runner) run(ctx context.Context) {
	_, err, _ := r.sf.Do(r.name, func() (any, error) {
		return nil, r.fn(ctx)
	})
	if err != nil && ctx.Err() == nil {
		r.logger.Warn("poll run failed",
			zap.String("watcher", r.name),
			zap.Error(err),
		)
	}
}

// Trigger forces a run outside the schedule, sharing any in-flight run.
func (r *Runner) Trigger(ctx context.Context) {
	r.run(ctx)
}

// Stop cancels the runner and waits for the goroutine to exit.
func (r *Runner) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil
}
