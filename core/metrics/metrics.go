package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values shared by the sync service and the reconciler.
const (
	KindStocks = "stocks"
	KindPrices = "prices"

	ResultSuccess = "success"
	ResultError   = "error"

	ReasonEmptyCode     = "empty_code"
	ReasonDuplicateCode = "duplicate_code"
)

var (
	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_sync_runs_total",
			Help: "Completed sync runs by result.",
		},
		[]string{"result"},
	)

	CampaignSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_sync_campaign_syncs_total",
			Help: "Per-campaign sync outcomes.",
		},
		[]string{"campaign", "result"},
	)

	BatchesPushed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_sync_batches_pushed_total",
			Help: "Update batches pushed to the marketplace.",
		},
		[]string{"campaign", "kind"},
	)

	EntriesPushed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_sync_entries_pushed_total",
			Help: "Individual update entries pushed to the marketplace.",
		},
		[]string{"campaign", "kind"},
	)

	RecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_sync_records_skipped_total",
			Help: "Inventory records skipped during reconciliation.",
		},
		[]string{"reason"},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "market_sync_run_duration_seconds",
			Help:    "Duration of a full sync run.",
			Buckets: []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
	)

	LastRunUnix = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "market_sync_last_run_timestamp_seconds",
			Help: "Unix time of the last completed sync run.",
		},
	)
)
