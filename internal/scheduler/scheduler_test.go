package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvery_RunsImmediatelyAndRepeats(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var n atomic.Int64

	done := make(chan struct{})
	go func() {
		defer close(done)
		Every(ctx, 10*time.Millisecond, "count", nil, func(context.Context) error {
			if n.Add(1) >= 3 {
				cancel()
			}
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Every did not stop after cancel")
	}
	assert.GreaterOrEqual(t, n.Load(), int64(3))
}

func TestEvery_ErrorsDoNotStopTheLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var n atomic.Int64

	go func() {
		time.Sleep(5 * time.Second)
		cancel()
	}()
	Every(ctx, 5*time.Millisecond, "fail", nil, func(context.Context) error {
		if n.Add(1) >= 2 {
			cancel()
		}
		return errors.New("boom")
	})

	assert.GreaterOrEqual(t, n.Load(), int64(2))
}

func TestEvery_CancelledBeforeStartNeverRuns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var n atomic.Int64

	Every(ctx, time.Hour, "once", nil, func(context.Context) error {
		n.Add(1)
		return nil
	})

	assert.Zero(t, n.Load())
}
