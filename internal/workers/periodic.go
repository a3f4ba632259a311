package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
)

// Periodic calls a task on a fixed interval. Task errors are logged and do
// not stop the loop.
type Periodic struct {
	name      string
	interval  time.Duration
	task      Task
	immediate bool
	log       *logger.Logger
}

// NewPeriodic returns a worker calling task every interval. A non-positive
// interval defaults to one minute.
func NewPeriodic(name string, interval time.Duration, task Task, log *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Periodic{name: name, interval: interval, task: task, log: log}
}

// Immediately makes Run call the task once before the first tick.
func (p *Periodic) Immediately() *Periodic {
	p.immediate = true
	return p
}

func (p *Periodic) Run(ctx context.Context) error {
	p.log.Debug().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")
	defer p.log.Debug().Str("worker", p.name).Msg("worker stopped")

	if p.immediate {
		p.tick(ctx)
	}

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			p.tick(ctx)
		}
	}
}

func (p *Periodic) tick(ctx context.Context) {
	if err := p.task(ctx); err != nil && ctx.Err() == nil {
		p.log.Err(err).Str("worker", p.name).Msg("worker task failed")
	}
}
