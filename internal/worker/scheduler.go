package worker

import (
	"sync"
	"time"

	"medbot/pkg/logger"
)

type Worker interface {
	Start()
	Stop()
}

type Scheduler struct {
	workers []Worker
	log     *logger.Logger
	wg      sync.WaitGroup
	started bool
	stopped bool
	mu      sync.RWMutex
	timeout time.Duration
}

func NewScheduler(log *logger.Logger) *Scheduler {
	return &Scheduler{
		workers: make([]Worker, 0),
		log:     log,
		timeout: 10 * time.Second,
	}
}

func (s *Scheduler) AddWorker(worker Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = append(s.workers, worker)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.started = true
	s.log.Info("starting scheduler", "workers", len(s.workers))

	for _, worker := range s.workers {
		worker.Start()
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	workers := append([]Worker(nil), s.workers...)
	s.mu.Unlock()

	s.log.Info("stopping scheduler")

	for _, worker := range workers {
		s.wg.Add(1)
		go func(w Worker) {
			defer s.wg.Done()
			w.Stop()
		}(worker)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("scheduler stopped gracefully")
	case <-time.After(s.timeout):
		s.log.Warn(nil, "scheduler stop timeout")
	}
}

// IsRunning is true between Start and Stop.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started && !s.stopped
}
