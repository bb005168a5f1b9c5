package poll_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/poll"

	"go.uber.org/zap"
)

func TestRunner_RunsImmediatelyAndOnInterval(t *testing.T) {
	var runs int64
	r := poll.NewRunner("test", 30*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	}, zap.NewNop())

	r.Start(context.Background())
	time.Sleep(100 * time.Millisecond)
	r.Stop()

	got := atomic.LoadInt64(&runs)
	if got < 2 {
		t.Errorf("expected at least 2 runs (immediate + ticks), got %d", got)
	}
}

func TestRunner_StopCancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	r := poll.NewRunner("test", time.Hour, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}, zap.NewNop())

	r.Start(context.Background())
	<-started

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the in-flight run")
	}
}

func TestRunner_StopIsIdempotent(t *testing.T) {
	r := poll.NewRunner("test", time.Hour, func(ctx context.Context) error {
		return nil
	}, zap.NewNop())

	r.Start(context.Background())
	r.Stop()
	r.Stop()
}

func TestRunner_NoRunsAfterStop(t *testing.T) {
	var runs int64
	r := poll.NewRunner("test", 20*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	}, zap.NewNop())

	r.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	r.Stop()

	after := atomic.LoadInt64(&runs)
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt64(&runs); got != after {
		t.Errorf("runner kept running after Stop: %d -> %d", after, got)
	}
}
