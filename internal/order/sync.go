package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/shopsync/internal/metrics"
	"github.com/wellywell/shopsync/internal/shopapi"
	"github.com/wellywell/shopsync/internal/types"
)

const (
	sweepPageSize = 100
	// pause between pages of a full sweep so the shop API is not hammered
	sweepPageDelay = 500 * time.Millisecond
)

// Fetcher is the consumed surface of the shop API client.
type Fetcher interface {
	GetBySerialNumbers(ctx context.Context, serialNumbers []string) ([]shopapi.RawOrder, error)
	GetByTimeWindow(ctx context.Context, from time.Time, to time.Time, dimension shopapi.DateDimension) ([]shopapi.RawOrder, error)
	GetPage(ctx context.Context, pageIndex int, pageSize int, statuses []string) ([]shopapi.RawOrder, error)
	GetPaginationInfo(ctx context.Context, pageSize int, statuses []string) (*shopapi.PaginationInfo, error)
	IsReady() bool
}

// ProgressFunc observes batch progress, one tick per processed item. It may
// drive a CLI bar, a log line or a metrics counter.
type ProgressFunc func(current int, total int)

// Syncer composes fetch, transform and upsert into batches. Per-item
// failures are collected into the result; only fetch failures propagate.
type Syncer struct {
	fetcher        Fetcher
	upserter       *Upserter
	onProgress     ProgressFunc
	onPageProgress ProgressFunc
	pageDelay      time.Duration
}

func NewSyncer(fetcher Fetcher, upserter *Upserter) *Syncer {
	return &Syncer{
		fetcher:   fetcher,
		upserter:  upserter,
		pageDelay: sweepPageDelay,
	}
}

func (s *Syncer) SetProgressFunc(f ProgressFunc) {
	s.onProgress = f
}

// SetPageProgressFunc registers a callback for page-level ticks of a full
// sweep, kept separate from the per-item callback so consumers never have
// to tell the two apart.
func (s *Syncer) SetPageProgressFunc(f ProgressFunc) {
	s.onPageProgress = f
}

// RunBatch transforms and upserts every raw order in sequence. It never
// fails as a whole: transform and persistence errors are recorded per item
// and processing continues with the next one.
func (s *Syncer) RunBatch(ctx context.Context, rawOrders []shopapi.RawOrder, updateExisting bool) types.SyncBatchResult {
	return s.runBatch(ctx, rawOrders, func(ctx context.Context, o types.Order) (types.UpsertOutcome, error) {
		return s.upserter.Upsert(ctx, o, updateExisting)
	})
}

func (s *Syncer) runBatch(ctx context.Context, rawOrders []shopapi.RawOrder, commit func(context.Context, types.Order) (types.UpsertOutcome, error)) types.SyncBatchResult {

	result := types.SyncBatchResult{
		RunID:  uuid.NewString(),
		Total:  len(rawOrders),
		Errors: []string{},
	}

	if len(rawOrders) == 0 {
		return result
	}

	for i, raw := range rawOrders {
		order, err := Transform(raw)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("order %d: %s", i+1, err))
			s.reportProgress(i+1, result.Total)
			continue
		}

		outcome, err := commit(ctx, order)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			s.reportProgress(i+1, result.Total)
			continue
		}

		switch outcome {
		case types.OutcomeCreated:
			result.Created++
		case types.OutcomeUpdated:
			result.Updated++
		case types.OutcomeSkipped:
			result.Skipped++
		}
		s.reportProgress(i+1, result.Total)
	}

	metrics.ObserveBatch(result)
	logger.Infof("Batch %s done: %d total, %d created, %d updated, %d skipped, %d errors",
		result.RunID, result.Total, result.Created, result.Updated, result.Skipped, len(result.Errors))

	return result
}

func (s *Syncer) reportProgress(current int, total int) {
	if s.onProgress != nil {
		s.onProgress(current, total)
	}
}

func (s *Syncer) reportPageProgress(current int, total int) {
	if s.onPageProgress != nil {
		s.onPageProgress(current, total)
	}
}

// DownloadBySerialNumbers fetches the given orders and commits them.
func (s *Syncer) DownloadBySerialNumbers(ctx context.Context, serialNumbers []string, updateExisting bool) (types.SyncBatchResult, error) {
	raw, err := s.fetcher.GetBySerialNumbers(ctx, serialNumbers)
	if err != nil {
		return types.SyncBatchResult{}, err
	}
	return s.RunBatch(ctx, raw, updateExisting), nil
}

// DownloadByWindow fetches orders whose chosen date falls into [from, to]
// and commits them.
func (s *Syncer) DownloadByWindow(ctx context.Context, from time.Time, to time.Time, dimension shopapi.DateDimension, updateExisting bool) (types.SyncBatchResult, error) {
	raw, err := s.fetcher.GetByTimeWindow(ctx, from, to, dimension)
	if err != nil {
		return types.SyncBatchResult{}, err
	}
	return s.RunBatch(ctx, raw, updateExisting), nil
}

// DownloadAll sweeps the whole order list page by page. Pages are fetched
// sequentially with a short delay in between; progress is reported per page.
func (s *Syncer) DownloadAll(ctx context.Context, statuses []string, updateExisting bool) (types.SyncBatchResult, error) {

	info, err := s.fetcher.GetPaginationInfo(ctx, sweepPageSize, statuses)
	if err != nil {
		return types.SyncBatchResult{}, err
	}

	total := types.SyncBatchResult{
		RunID:  uuid.NewString(),
		Errors: []string{},
	}

	logger.Infof("Full sweep %s: %d orders over %d pages", total.RunID, info.TotalOrders, info.TotalPages)

	for page := 0; page < info.TotalPages; page++ {
		raw, err := s.fetcher.GetPage(ctx, page, info.OrdersPerPage, statuses)
		if err != nil {
			return total, err
		}

		pageResult := s.RunBatch(ctx, raw, updateExisting)
		total.Total += pageResult.Total
		total.Created += pageResult.Created
		total.Updated += pageResult.Updated
		total.Skipped += pageResult.Skipped
		total.Errors = append(total.Errors, pageResult.Errors...)

		s.reportPageProgress(page+1, info.TotalPages)

		if page < info.TotalPages-1 {
			time.Sleep(s.pageDelay)
		}
	}

	return total, nil
}

// MonitorStatuses re-checks orders the shop modified inside the window and
// refreshes the stored copies. Unknown orders are skipped, never created.
func (s *Syncer) MonitorStatuses(ctx context.Context, from time.Time, to time.Time) (types.SyncBatchResult, error) {
	raw, err := s.fetcher.GetByTimeWindow(ctx, from, to, shopapi.DateModified)
	if err != nil {
		return types.SyncBatchResult{}, err
	}
	return s.runBatch(ctx, raw, s.upserter.Refresh), nil
}
