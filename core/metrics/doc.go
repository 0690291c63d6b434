// Package metrics defines the Prometheus instrumentation for the sync service.
//
// Metrics are registered on the default registry via promauto at package load,
// so callers simply increment the exported collectors.
//
// # Collectors
//
//   - SyncRuns / CampaignSyncs: run outcomes, overall and per campaign.
//   - BatchesPushed / EntriesPushed: volume shipped to the marketplace,
//     labeled by update kind (stocks, prices).
//   - RecordsSkipped: inventory rows dropped during reconciliation.
//   - RunDuration / LastRunUnix: timing of full runs.
//
// # Scraping
//
// Handler adapts the standard promhttp handler to Fiber so the serve command
// can mount it:
//
//	app.Get("/metrics", metrics.Handler())
package metrics
