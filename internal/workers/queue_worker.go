package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
)

const defaultPollInterval = 5 * time.Second

type queueWorker struct {
	drainer  Drainer
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewQueueWorker creates a worker that drains pending queue jobs every
// interval. A non-positive interval falls back to 5 seconds. The worker is
// idle until Start is called.
func NewQueueWorker(drainer Drainer, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &queueWorker{drainer: drainer, interval: interval, logger: logger}
}

// Start stops any previous run, then polls the queue in a background
// goroutine until ctx is cancelled or Stop is called.
func (w *queueWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("queue worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.drain(jobCtx)
			}
		}
	}()
}

func (w *queueWorker) drain(ctx context.Context) {
	n, err := w.drainer.ProcessPending(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "queueWorker.drain").Msg("error draining queue")
		return
	}
	if n > 0 {
		w.logger.Debug().Int("jobs", n).Msg("queue drained")
	}
}

// Stop cancels the polling goroutine and waits for it to exit.
func (w *queueWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
		w.logger.Info().Msg("queue worker stopped")
	}
	w.wg.Wait()
}
