package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/pkg/errs"
)

var ErrSweepInProgress = errs.New("sweep already in progress")

// RunLock admits one sweep at a time. release is safe to call more than once.
type RunLock interface {
	TryAcquire(ctx context.Context) (release func(), ok bool, err error)
}

type SweepRunner interface {
	Run(ctx context.Context) (*SweepReport, error)
}

type SweepTrigger interface {
	Trigger(ctx context.Context) (*SweepReport, error)
}

// Scheduler runs the sweeper on a fixed interval and serves manual
// triggers. Both paths go through the same lock.
type Scheduler struct {
	runner   SweepRunner
	lock     RunLock
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(runner SweepRunner, lock RunLock, interval time.Duration) *Scheduler {
	return &Scheduler{
		runner:   runner,
		lock:     lock,
		interval: interval,
	}
}

func (s *Scheduler) Trigger(ctx context.Context) (*SweepReport, error) {
	release, ok, err := s.lock.TryAcquire(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSweepInProgress
	}
	defer release()

	return s.runner.Run(ctx)
}

// Start launches the ticker loop. It is a no-op when already running.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx, s.done)
	slog.Info("sweeper scheduled", "interval", s.interval.String())
}

// Stop cancels the loop, including a sweep in flight, and waits for it to
// return or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	_, err := s.Trigger(ctx)
	switch {
	case err == nil:
	case errs.Is(err, ErrSweepInProgress):
		slog.Debug("skipping scheduled sweep, another run holds the lock")
	case ctx.Err() != nil:
	default:
		slog.Error("scheduled sweep failed", "error", err.Error())
	}
}
