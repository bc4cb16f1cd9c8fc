package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Runner is a long-lived consumer that returns once ctx is done.
type Runner interface {
	Run(ctx context.Context)
}

type QueueDepth interface {
	Len(ctx context.Context) (int64, error)
}

// Pool runs size copies of a Runner and reports the backlog of the queue they
// drain on every tick.
type Pool struct {
	runner   Runner
	depth    QueueDepth
	size     int
	interval time.Duration
	logger   *slog.Logger
}

func NewPool(runner Runner, depth QueueDepth, size int, logger *slog.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		runner:   runner,
		depth:    depth,
		size:     size,
		interval: 30 * time.Second,
		logger:   logger,
	}
}

func (p *Pool) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < p.size; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.runner.Run(ctx)
		}()
	}

	if p.depth != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.monitor(ctx)
		}()
	}

	wg.Wait()
	p.logger.Info("worker pool stopped", slog.Int("size", p.size))
}

func (p *Pool) monitor(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.depth.Len(ctx)
			if err != nil {
				if ctx.Err() == nil {
					p.logger.Warn("queue depth check failed", slog.Any("error", err))
				}
				continue
			}
			p.logger.Debug("notification backlog", slog.Int64("pending", n))
		}
	}
}
