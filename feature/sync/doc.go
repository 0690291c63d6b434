// Package sync reconciles the inventory feed against marketplace campaigns
// and pushes the resulting stock and price updates.
//
// # Reconciliation
//
// BuildStockUpdates produces a complete stock picture per campaign: every
// offer id the marketplace lists appears exactly once in the output. Records
// matching a listed offer come first in record order, then every unmatched
// offer is zero-filled in listing order, so an offer that fell out of the
// feed is actively reset rather than left stale. BuildPriceUpdates is a
// plain membership filter over the same listing.
//
// Both builders treat parse failures as data errors and abort the campaign:
// pushing a half-reconciled picture would silently degrade stock integrity.
//
// # Orchestration
//
// Service.Run loads the snapshot once, then processes campaigns
// sequentially; RunOptions can restrict a run to the stock or the price
// phase. Campaign failures are isolated: a dead FBS campaign never blocks
// the DBS push. Every batch push is awaited and reported; the run report
// aggregates per-campaign outcomes and feeds metrics, notifications and
// the optional object storage archive.
package sync
