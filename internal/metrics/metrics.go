package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wellywell/shopsync/internal/types"
)

var (
	ordersProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopsync_orders_processed_total",
		Help: "Synced orders by upsert outcome",
	}, []string{"outcome"})

	batchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopsync_batch_errors_total",
		Help: "Per-item errors collected across sync batches",
	})

	batchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopsync_batches_total",
		Help: "Completed sync batches",
	})

	syncRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shopsync_sync_running",
		Help: "1 while a sync batch is in flight",
	})
)

func ObserveBatch(result types.SyncBatchResult) {
	batchesTotal.Inc()
	ordersProcessed.WithLabelValues(string(types.OutcomeCreated)).Add(float64(result.Created))
	ordersProcessed.WithLabelValues(string(types.OutcomeUpdated)).Add(float64(result.Updated))
	ordersProcessed.WithLabelValues(string(types.OutcomeSkipped)).Add(float64(result.Skipped))
	batchErrors.Add(float64(len(result.Errors)))
}

func SetSyncRunning(running bool) {
	if running {
		syncRunning.Set(1)
	} else {
		syncRunning.Set(0)
	}
}
