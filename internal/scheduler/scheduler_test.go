package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wellywell/shopsync/internal/shopapi"
	"github.com/wellywell/shopsync/internal/types"
)

type stubRunner struct {
	downloadCalls int32
	monitorCalls  int32
	block         chan struct{}
}

func (r *stubRunner) DownloadByWindow(_ context.Context, _ time.Time, _ time.Time, _ shopapi.DateDimension, _ bool) (types.SyncBatchResult, error) {
	atomic.AddInt32(&r.downloadCalls, 1)
	if r.block != nil {
		<-r.block
	}
	return types.SyncBatchResult{Total: 1, Created: 1}, nil
}

func (r *stubRunner) MonitorStatuses(_ context.Context, _ time.Time, _ time.Time) (types.SyncBatchResult, error) {
	atomic.AddInt32(&r.monitorCalls, 1)
	if r.block != nil {
		<-r.block
	}
	return types.SyncBatchResult{Total: 1, Updated: 1}, nil
}

type stubAPI struct {
	ready bool
}

func (a *stubAPI) IsReady() bool {
	return a.ready
}

func TestStartIsNoopWhenNotConfigured(t *testing.T) {

	s := NewScheduler(&stubRunner{}, &stubAPI{ready: false}, 30, 60, true, nil)

	s.Start()

	status := s.Status()
	assert.False(t, status.IsScheduled)
	assert.False(t, status.APIReady)
}

func TestStartIsNoopWithBadInterval(t *testing.T) {

	for _, interval := range []int{0, -30} {
		s := NewScheduler(&stubRunner{}, &stubAPI{ready: true}, interval, 60, true, nil)

		assert.NotPanics(t, func() {
			s.Start()
		})
		assert.False(t, s.Status().IsScheduled)
	}
}

func TestStartTwiceKeepsOneTimer(t *testing.T) {

	s := NewScheduler(&stubRunner{}, &stubAPI{ready: true}, 30, 60, true, nil)
	defer s.Stop()

	s.Start()
	first := s.done

	s.Start()

	assert.True(t, s.Status().IsScheduled)
	// second Start must not have re-armed anything
	assert.Equal(t, first, s.done)
}

func TestStopIsIdempotent(t *testing.T) {

	s := NewScheduler(&stubRunner{}, &stubAPI{ready: true}, 30, 60, true, nil)

	s.Start()
	assert.True(t, s.Status().IsScheduled)

	s.Stop()
	assert.False(t, s.Status().IsScheduled)

	s.Stop()
	assert.False(t, s.Status().IsScheduled)
}

func TestRunNow(t *testing.T) {

	runner := &stubRunner{}
	s := NewScheduler(runner, &stubAPI{ready: true}, 30, 60, true, nil)

	result, err := s.RunNow(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, int32(1), atomic.LoadInt32(&runner.downloadCalls))
	assert.False(t, s.Status().IsRunning)
}

func TestRunGuardExcludesConcurrentRuns(t *testing.T) {

	runner := &stubRunner{block: make(chan struct{})}
	s := NewScheduler(runner, &stubAPI{ready: true}, 30, 60, true, nil)

	started := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		close(started)
		_, err := s.RunNow(context.Background())
		assert.NoError(t, err)
		close(finished)
	}()

	<-started
	assert.Eventually(t, func() bool {
		return s.Status().IsRunning
	}, time.Second, 5*time.Millisecond)

	_, err := s.RunNow(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	_, err = s.RunStatusMonitoringNow(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	// the blocked run is the only one that reached the orchestrator
	assert.Equal(t, int32(1), atomic.LoadInt32(&runner.downloadCalls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&runner.monitorCalls))

	close(runner.block)
	<-finished
	assert.False(t, s.Status().IsRunning)
}

func TestRunStatusMonitoringNow(t *testing.T) {

	runner := &stubRunner{}
	s := NewScheduler(runner, &stubAPI{ready: true}, 30, 60, true, nil)

	result, err := s.RunStatusMonitoringNow(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, int32(1), atomic.LoadInt32(&runner.monitorCalls))
	assert.False(t, s.Status().IsRunning)
}

func TestStatusReportsConfiguration(t *testing.T) {

	s := NewScheduler(&stubRunner{}, &stubAPI{ready: true}, 15, 45, false, nil)

	status := s.Status()

	assert.False(t, status.IsScheduled)
	assert.False(t, status.IsRunning)
	assert.Equal(t, 15, status.IntervalMinutes)
	assert.Equal(t, 45, status.LookbackMinutes)
	assert.True(t, status.APIReady)
}

func TestRunGuardReleasedOnWindowError(t *testing.T) {

	runner := &stubRunner{}
	s := NewScheduler(runner, &stubAPI{ready: true}, 30, 0, true, nil)

	_, err := s.RunNow(context.Background())

	assert.ErrorIs(t, err, ErrBadLookback)
	assert.False(t, s.Status().IsRunning)
	assert.Equal(t, int32(0), atomic.LoadInt32(&runner.downloadCalls))
}
