package sync

import (
	"fmt"
	"time"
)

// CampaignReport summarizes one campaign's part of a run.
type CampaignReport struct {
	CampaignID        string `json:"campaign_id"`
	Model             string `json:"model"`
	Offers            int    `json:"offers"`
	Matched           int    `json:"matched"`
	StockEntries      int    `json:"stock_entries"`
	NonZeroStocks     int    `json:"non_zero_stocks"`
	StockBatches      int    `json:"stock_batches"`
	PriceEntries      int    `json:"price_entries"`
	PriceBatches      int    `json:"price_batches"`
	ZeroFilled        int    `json:"zero_filled"`
	SkippedUnknown    int    `json:"skipped_unknown,omitempty"`
	SkippedDuplicates int    `json:"skipped_duplicates,omitempty"`
	SkippedEmptyCodes int    `json:"skipped_empty_codes,omitempty"`
	Error             string `json:"error,omitempty"`
}

// RunReport summarizes one full sync run across all campaigns.
type RunReport struct {
	RunID      string           `json:"run_id"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Records    int              `json:"records"`
	Campaigns  []CampaignReport `json:"campaigns"`
	// Error is set when the run failed before reaching any campaign.
	Error string `json:"error,omitempty"`
}

// Failed reports whether anything in the run went wrong.
func (r RunReport) Failed() bool {
	if r.Error != "" {
		return true
	}
	for _, c := range r.Campaigns {
		if c.Error != "" {
			return true
		}
	}
	return false
}

// Summary renders a one-line digest for notifications and logs.
func (r RunReport) Summary() string {
	if r.Error != "" {
		return fmt.Sprintf("sync %s failed: %s", r.RunID, r.Error)
	}
	failed := 0
	stocks := 0
	prices := 0
	for _, c := range r.Campaigns {
		if c.Error != "" {
			failed++
		}
		stocks += c.StockEntries
		prices += c.PriceEntries
	}
	if failed > 0 {
		return fmt.Sprintf("sync %s: %d/%d campaigns failed, %d stock / %d price entries",
			r.RunID, failed, len(r.Campaigns), stocks, prices)
	}
	return fmt.Sprintf("sync %s: %d campaigns, %d stock / %d price entries",
		r.RunID, len(r.Campaigns), stocks, prices)
}
