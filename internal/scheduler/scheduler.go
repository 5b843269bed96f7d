package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on each tick until ctx is done. Runs
// never overlap: a tick that arrives while the task is still running is
// dropped. Task errors are logged and do not stop the loop.
func Every(ctx context.Context, interval time.Duration, name string, log *zap.Logger, task Task) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("scheduler").With(zap.String("task", name))

	run := func() {
		start := time.Now()
		if err := task(ctx); err != nil {
			log.Error("task failed", zap.Error(err), zap.Duration("dur", time.Since(start)))
			return
		}
		log.Info("task done", zap.Duration("dur", time.Since(start)), zap.Duration("next_in", interval))
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	if ctx.Err() != nil {
		return
	}
	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if ctx.Err() != nil {
				return
			}
			run()
		}
	}
}
