package worker

import (
	"context"
	"sync"
	"time"

	"medbot/pkg/logger"
)

// Purger removes records older than age along with any hot copies of them.
type Purger interface {
	Purge(ctx context.Context, age time.Duration) (int64, error)
}

// CacheSweepWorker deletes cached drug records older than maxAge on every
// tick. Records between the TTL and maxAge stay available to the stale path.
type CacheSweepWorker struct {
	store    Purger
	interval time.Duration
	maxAge   time.Duration
	log      *logger.Logger

	mu        sync.Mutex
	stopChan  chan struct{}
	done      chan struct{}
	isRunning bool
}

func NewCacheSweepWorker(store Purger, interval, maxAge time.Duration, log *logger.Logger) *CacheSweepWorker {
	return &CacheSweepWorker{
		store:    store,
		interval: interval,
		maxAge:   maxAge,
		log:      log.With("worker", "cache_sweep"),
	}
}

func (w *CacheSweepWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.isRunning {
		return
	}

	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})
	w.isRunning = true
	w.log.Info("cache sweep worker started", "interval", w.interval.String(), "max_age", w.maxAge.String())

	go w.run(w.stopChan, w.done)
}

// Stop returns once the in-flight sweep, if any, has finished.
func (w *CacheSweepWorker) Stop() {
	w.mu.Lock()
	if !w.isRunning {
		w.mu.Unlock()
		return
	}
	close(w.stopChan)
	done := w.done
	w.isRunning = false
	w.mu.Unlock()

	<-done
	w.log.Info("cache sweep worker stopped")
}

func (w *CacheSweepWorker) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Sweep()

	for {
		select {
		case <-ticker.C:
			w.Sweep()
		case <-stop:
			return
		}
	}
}

// Sweep runs one purge pass.
func (w *CacheSweepWorker) Sweep() int64 {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := w.store.Purge(ctx, w.maxAge)
	if err != nil {
		w.log.Warn(err, "cache sweep failed")
		return 0
	}
	if removed > 0 {
		w.log.Info("cache sweep removed records", "removed", removed)
	}
	return removed
}
