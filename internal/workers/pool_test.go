package workers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type countingRunner struct {
	started atomic.Int32
}

func (r *countingRunner) Run(ctx context.Context) {
	r.started.Add(1)
	<-ctx.Done()
}

type fakeDepth struct {
	calls atomic.Int32
	err   error
}

func (d *fakeDepth) Len(context.Context) (int64, error) {
	d.calls.Add(1)
	return 3, d.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPool_StartsAllRunnersAndStopsOnCancel(t *testing.T) {
	runner := &countingRunner{}
	p := NewPool(runner, nil, 3, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for runner.started.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := runner.started.Load(); got != 3 {
		t.Fatalf("expected 3 runners, got %d", got)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop after cancel")
	}
}

func TestPool_SizeAtLeastOne(t *testing.T) {
	p := NewPool(&countingRunner{}, nil, 0, newTestLogger())
	if p.size != 1 {
		t.Fatalf("expected size 1, got %d", p.size)
	}
}

func TestPool_MonitorPollsDepth(t *testing.T) {
	for _, err := range []error{nil, errors.New("redis down")} {
		depth := &fakeDepth{err: err}
		p := NewPool(&countingRunner{}, depth, 1, newTestLogger())
		p.interval = 10 * time.Millisecond

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		p.Run(ctx)
		cancel()

		if depth.calls.Load() == 0 {
			t.Fatalf("expected depth to be polled (err=%v)", err)
		}
	}
}
