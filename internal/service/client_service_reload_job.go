package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/workers"
)

// DefaultReloadInterval is used when Start gets a non-positive interval.
const DefaultReloadInterval = 30 * time.Second

type reloadJob struct {
	controller RecordController
	newWorker  func(interval time.Duration) workers.Worker
	log        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReloadJob creates a job that calls controller.Reload on a ticker. The
// job is idle until Start is called.
func NewReloadJob(controller RecordController, log *logger.Logger) ReloadJob {
	j := &reloadJob{controller: controller, log: log}
	j.newWorker = func(interval time.Duration) workers.Worker {
		return workers.NewPeriodic("record-reload", interval, controller.Reload, log)
	}
	return j
}

// Start implements ReloadJob. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *reloadJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultReloadInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	worker := j.newWorker(interval)

	go func() {
		defer j.wg.Done()
		if err := worker.Run(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			j.log.Warn().Err(err).
				Str("func", "reloadJob.Start").
				Dur("interval", interval).
				Msg("record reload worker stopped")
		}
	}()
}

// Stop implements ReloadJob. Safe to call when the job is not running.
func (j *reloadJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
