// Package scheduler runs the periodic cache resynchronization tasks.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
)

// Task periodically invokes fn until the context is canceled or Stop is
// called. After Stop returns, fn will not fire again.
type Task struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error

	started  bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewTask(name string, interval time.Duration, fn func(ctx context.Context) error) *Task {
	return &Task{
		name:     name,
		interval: interval,
		fn:       fn,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the task in the background: one immediate run, then one per
// interval. Errors are logged; the task keeps running.
func (t *Task) Start(ctx context.Context) {
	t.started = true
	go func() {
		defer close(t.done)

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		t.run(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.stop:
				return
			case <-ticker.C:
				t.run(ctx)
			}
		}
	}()
}

func (t *Task) run(ctx context.Context) {
	logger := logrus.WithFields(logrus.Fields{
		"task":   t.name,
		"run_id": shortuuid.New(),
	})

	if err := t.fn(ctx); err != nil {
		logger.WithError(err).Error("scheduled run failed")
		return
	}
	logger.Debug("scheduled run completed")
}

// Stop cancels the periodic task and waits for a run in flight to finish.
// Stopping twice is a no-op.
func (t *Task) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
	if t.started {
		<-t.done
	}
}
