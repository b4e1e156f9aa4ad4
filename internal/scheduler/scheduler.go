package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task once right away and then on each tick until ctx is done.
// Runs never overlap. A non-positive interval disables the task.
func Every(ctx context.Context, log *slog.Logger, interval time.Duration, name string, task Task) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	run := func() {
		if err := task(ctx); err != nil && ctx.Err() == nil {
			log.Warn("task failed", slog.String("component", "scheduler"), slog.String("task", name), slog.String("error", err.Error()))
		}
	}

	// run immediately
	run()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
