package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/shopsync/internal/metrics"
	"github.com/wellywell/shopsync/internal/shopapi"
	"github.com/wellywell/shopsync/internal/types"
)

// ErrSyncInProgress is returned by manual triggers that lose to the
// run-guard. Scheduled ticks just log and skip.
var ErrSyncInProgress = errors.New("a sync is already in progress")

// Runner is the orchestrator surface the scheduler drives.
type Runner interface {
	DownloadByWindow(ctx context.Context, from time.Time, to time.Time, dimension shopapi.DateDimension, updateExisting bool) (types.SyncBatchResult, error)
	MonitorStatuses(ctx context.Context, from time.Time, to time.Time) (types.SyncBatchResult, error)
}

type ReadyChecker interface {
	IsReady() bool
}

// Scheduler runs the sync pipeline on a timer. At most one batch is in
// flight process-wide: a tick that fires while a batch runs is skipped,
// never queued. The status-monitoring pass shares the same guard.
type Scheduler struct {
	syncer          Runner
	api             ReadyChecker
	intervalMinutes int
	lookbackMinutes int
	updateExisting  bool
	location        *time.Location
	now             func() time.Time

	mu          sync.Mutex
	isScheduled bool
	isRunning   bool
	done        chan struct{}
	ticker      *time.Ticker
}

func NewScheduler(syncer Runner, api ReadyChecker, intervalMinutes int, lookbackMinutes int, updateExisting bool, location *time.Location) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		syncer:          syncer,
		api:             api,
		intervalMinutes: intervalMinutes,
		lookbackMinutes: lookbackMinutes,
		updateExisting:  updateExisting,
		location:        location,
		now:             time.Now,
	}
}

// Start arms the timer. It is a no-op when already scheduled or when the
// shop client is not configured; callers check Status afterwards.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isScheduled {
		logger.Warning("Scheduler already started, ignoring")
		return
	}
	if !s.api.IsReady() {
		logger.Warning("Shop API client not configured, not scheduling sync")
		return
	}
	if s.intervalMinutes <= 0 {
		logger.Warningf("Invalid sync interval %d minutes, not scheduling sync", s.intervalMinutes)
		return
	}

	s.isScheduled = true
	s.done = make(chan struct{})
	s.ticker = time.NewTicker(time.Duration(s.intervalMinutes) * time.Minute)

	go s.loop(s.done, s.ticker)

	logger.Infof("Sync scheduled every %d minutes, lookback %d minutes, timezone %s",
		s.intervalMinutes, s.lookbackMinutes, s.location)
}

// Stop cancels future ticks. An in-flight batch is allowed to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isScheduled {
		return
	}
	s.isScheduled = false
	s.ticker.Stop()
	close(s.done)

	logger.Info("Sync schedule stopped")
}

func (s *Scheduler) loop(done chan struct{}, ticker *time.Ticker) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.runScheduled()
		}
	}
}

func (s *Scheduler) runScheduled() {
	if !s.tryAcquire() {
		logger.Warning("Previous sync still running, skipping tick")
		return
	}
	defer s.release()

	now := s.now()
	logger.Infof("Sync tick at %s", now.In(s.location).Format(time.RFC3339))

	from, to, err := ComputeWindow(now, s.lookbackMinutes)
	if err != nil {
		logger.Errorf("Could not compute sync window: %s", err)
		return
	}

	_, err = s.syncer.DownloadByWindow(context.Background(), from, to, shopapi.DateAdded, s.updateExisting)
	if err != nil {
		logger.Errorf("Scheduled sync failed: %s", err)
	}
}

// RunNow triggers a sync outside the timer. It still honors the run-guard.
func (s *Scheduler) RunNow(ctx context.Context) (types.SyncBatchResult, error) {
	if !s.tryAcquire() {
		return types.SyncBatchResult{}, ErrSyncInProgress
	}
	defer s.release()

	from, to, err := ComputeWindow(s.now(), s.lookbackMinutes)
	if err != nil {
		return types.SyncBatchResult{}, err
	}
	return s.syncer.DownloadByWindow(ctx, from, to, shopapi.DateAdded, s.updateExisting)
}

// RunStatusMonitoringNow re-checks recently modified orders against the
// shop. Shares the run-guard with the main sync.
func (s *Scheduler) RunStatusMonitoringNow(ctx context.Context) (types.SyncBatchResult, error) {
	if !s.tryAcquire() {
		return types.SyncBatchResult{}, ErrSyncInProgress
	}
	defer s.release()

	from, to, err := ComputeWindow(s.now(), s.lookbackMinutes)
	if err != nil {
		return types.SyncBatchResult{}, err
	}
	return s.syncer.MonitorStatuses(ctx, from, to)
}

func (s *Scheduler) Status() types.SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return types.SchedulerStatus{
		IsScheduled:     s.isScheduled,
		IsRunning:       s.isRunning,
		IntervalMinutes: s.intervalMinutes,
		LookbackMinutes: s.lookbackMinutes,
		APIReady:        s.api.IsReady(),
	}
}

func (s *Scheduler) tryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return false
	}
	s.isRunning = true
	metrics.SetSyncRunning(true)
	return true
}

func (s *Scheduler) release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isRunning = false
	metrics.SetSyncRunning(false)
}
