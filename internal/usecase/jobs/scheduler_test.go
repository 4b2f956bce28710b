//go:build unit

package jobs_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/infra/lock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingRunner struct {
	runs    atomic.Int32
	started chan struct{}
	unblock chan struct{}
}

func (r *blockingRunner) Run(ctx context.Context) (*jobs.SweepReport, error) {
	r.runs.Add(1)
	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.unblock != nil {
		select {
		case <-r.unblock:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &jobs.SweepReport{StartedAt: now}, nil
}

type failingLock struct{}

func (failingLock) TryAcquire(context.Context) (func(), bool, error) {
	return nil, false, errors.New("redis: connection refused")
}

func TestScheduler_Trigger(t *testing.T) {
	t.Run("second trigger is refused while a sweep runs", func(t *testing.T) {
		runner := &blockingRunner{started: make(chan struct{}, 1), unblock: make(chan struct{})}
		s := jobs.NewScheduler(runner, lock.NewLocalLock(), time.Hour)

		done := make(chan error, 1)
		go func() {
			_, err := s.Trigger(context.Background())
			done <- err
		}()
		<-runner.started

		_, err := s.Trigger(context.Background())
		assert.True(t, errs.Is(err, jobs.ErrSweepInProgress))

		close(runner.unblock)
		require.NoError(t, <-done)

		report, err := s.Trigger(context.Background())
		require.NoError(t, err)
		assert.Equal(t, now, report.StartedAt)
		assert.Equal(t, int32(2), runner.runs.Load())
	})

	t.Run("lock errors are returned", func(t *testing.T) {
		runner := &blockingRunner{}
		s := jobs.NewScheduler(runner, failingLock{}, time.Hour)

		_, err := s.Trigger(context.Background())
		assert.Error(t, err)
		assert.Equal(t, int32(0), runner.runs.Load())
	})
}

func TestScheduler_StartStop(t *testing.T) {
	runner := &blockingRunner{}
	s := jobs.NewScheduler(runner, lock.NewLocalLock(), 10*time.Millisecond)

	s.Start()
	s.Start()
	assert.Eventually(t, func() bool { return runner.runs.Load() >= 2 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	stopped := runner.runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, runner.runs.Load())
	assert.NoError(t, s.Stop(ctx))
}
