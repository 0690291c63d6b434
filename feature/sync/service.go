package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	stdsync "sync"
	"time"

	"market-sync/core/batch"
	"market-sync/core/metrics"
	"market-sync/core/notify"
	"market-sync/feature/inventory"
	"market-sync/feature/market"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAlreadyRunning is returned when a run is requested while another is
// still in flight.
var ErrAlreadyRunning = errors.New("sync: run already in progress")

// RunOptions narrows what a run does. The zero value runs both phases.
type RunOptions struct {
	// StocksOnly skips the price phase.
	StocksOnly bool
	// PricesOnly skips the stock phase.
	PricesOnly bool
}

// Archiver persists finished run reports.
type Archiver interface {
	Archive(ctx context.Context, report RunReport) error
}

// Service drives full reconciliation+upload cycles.
type Service struct {
	cfg       Config
	source    inventory.Source
	client    market.Client
	campaigns []market.Campaign
	notifier  notify.Notifier
	archiver  Archiver
	logger    *zap.Logger

	mu      stdsync.Mutex
	running bool
	last    *RunReport
}

// NewService wires the sync service. archiver may be nil when report
// archival is disabled.
func NewService(cfg Config, source inventory.Source, client market.Client, campaigns []market.Campaign, notifier notify.Notifier, archiver Archiver, logger *zap.Logger) *Service {
	return &Service{
		cfg:       cfg,
		source:    source,
		client:    client,
		campaigns: campaigns,
		notifier:  notifier,
		archiver:  archiver,
		logger:    logger,
	}
}

// Run executes one full sync cycle: load the snapshot once, then reconcile
// and push per campaign. Campaigns are isolated; one failing does not stop
// the others. Only one run may be active at a time.
func (s *Service) Run(ctx context.Context, opts RunOptions) (RunReport, error) {
	if !s.tryStart() {
		return RunReport{}, ErrAlreadyRunning
	}
	defer s.finish()

	start := time.Now()
	report := RunReport{RunID: uuid.NewString(), StartedAt: start.UTC()}
	s.logger.Info("sync run started",
		zap.String("run_id", report.RunID),
		zap.Int("campaigns", len(s.campaigns)))

	records, err := s.source.Load(ctx)
	if err != nil {
		report.Error = fmt.Sprintf("load inventory: %v", err)
		s.conclude(ctx, &report, start)
		return report, fmt.Errorf("load inventory: %w", err)
	}
	report.Records = len(records)

	for _, campaign := range s.campaigns {
		report.Campaigns = append(report.Campaigns, s.syncCampaign(ctx, campaign, records, opts))
	}

	s.conclude(ctx, &report, start)

	if failed := report.failedCampaigns(); len(failed) > 0 {
		return report, fmt.Errorf("sync: campaigns failed: %s", strings.Join(failed, ", "))
	}
	return report, nil
}

// Status reports whether a run is active and returns the last finished
// report, if any.
func (s *Service) Status() (bool, *RunReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running, s.last
}

// Campaigns returns the configured campaign list.
func (s *Service) Campaigns() []market.Campaign {
	return s.campaigns
}

func (s *Service) tryStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

func (s *Service) finish() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

func (s *Service) syncCampaign(ctx context.Context, campaign market.Campaign, records []inventory.Record, opts RunOptions) CampaignReport {
	l := s.logger.With(
		zap.String("campaign", campaign.ID),
		zap.String("model", campaign.Model))

	cr := CampaignReport{CampaignID: campaign.ID, Model: campaign.Model}
	if err := s.pushCampaign(ctx, campaign, records, opts, &cr, l); err != nil {
		cr.Error = err.Error()
		l.Error("campaign sync failed", zap.Error(err))
		metrics.CampaignSyncs.WithLabelValues(campaign.ID, metrics.ResultError).Inc()
		return cr
	}

	l.Info("campaign synced",
		zap.Int("offers", cr.Offers),
		zap.Int("stock_entries", cr.StockEntries),
		zap.Int("price_entries", cr.PriceEntries),
		zap.Int("zero_filled", cr.ZeroFilled))
	metrics.CampaignSyncs.WithLabelValues(campaign.ID, metrics.ResultSuccess).Inc()
	return cr
}

func (s *Service) pushCampaign(ctx context.Context, campaign market.Campaign, records []inventory.Record, opts RunOptions, cr *CampaignReport, l *zap.Logger) error {
	offerIDs, err := s.client.OfferIDs(ctx, campaign.ID)
	if err != nil {
		return fmt.Errorf("list offers: %w", err)
	}
	cr.Offers = len(offerIDs)

	if !opts.PricesOnly {
		stocks, stats, err := BuildStockUpdates(records, offerIDs, campaign.WarehouseID, time.Now())
		if err != nil {
			return fmt.Errorf("build stock updates: %w", err)
		}
		cr.Matched = stats.Matched
		cr.StockEntries = len(stocks)
		cr.NonZeroStocks = stats.NonZero
		cr.ZeroFilled = stats.ZeroFilled
		cr.SkippedUnknown = stats.SkippedUnknown
		cr.SkippedDuplicates = stats.SkippedDuplicate
		cr.SkippedEmptyCodes = stats.SkippedEmptyCode
		metrics.RecordsSkipped.WithLabelValues(metrics.ReasonEmptyCode).Add(float64(stats.SkippedEmptyCode))
		metrics.RecordsSkipped.WithLabelValues(metrics.ReasonDuplicateCode).Add(float64(stats.SkippedDuplicate))

		stockBatches, err := batch.Divide(stocks, s.cfg.StockBatchSize)
		if err != nil {
			return fmt.Errorf("batch stocks: %w", err)
		}
		for i, chunk := range stockBatches {
			if err := s.client.PushStocks(ctx, campaign.ID, chunk); err != nil {
				return fmt.Errorf("push stock batch %d/%d: %w", i+1, len(stockBatches), err)
			}
			cr.StockBatches++
			metrics.BatchesPushed.WithLabelValues(campaign.ID, metrics.KindStocks).Inc()
			metrics.EntriesPushed.WithLabelValues(campaign.ID, metrics.KindStocks).Add(float64(len(chunk)))
		}
	}

	if !opts.StocksOnly {
		prices, err := BuildPriceUpdates(records, offerIDs)
		if err != nil {
			return fmt.Errorf("build price updates: %w", err)
		}
		cr.PriceEntries = len(prices)

		priceBatches, err := batch.Divide(prices, s.cfg.PriceBatchSize)
		if err != nil {
			return fmt.Errorf("batch prices: %w", err)
		}
		for i, chunk := range priceBatches {
			if err := s.client.PushPrices(ctx, campaign.ID, chunk); err != nil {
				return fmt.Errorf("push price batch %d/%d: %w", i+1, len(priceBatches), err)
			}
			cr.PriceBatches++
			metrics.BatchesPushed.WithLabelValues(campaign.ID, metrics.KindPrices).Inc()
			metrics.EntriesPushed.WithLabelValues(campaign.ID, metrics.KindPrices).Add(float64(len(chunk)))
		}
	}

	return nil
}

// conclude stamps, records and publishes the finished report.
func (s *Service) conclude(ctx context.Context, report *RunReport, start time.Time) {
	report.FinishedAt = time.Now().UTC()

	metrics.RunDuration.Observe(time.Since(start).Seconds())
	metrics.LastRunUnix.Set(float64(report.FinishedAt.Unix()))

	var notifyErr error
	if report.Failed() {
		metrics.SyncRuns.WithLabelValues(metrics.ResultError).Inc()
		notifyErr = s.notifier.Error(ctx, report.Summary())
	} else {
		metrics.SyncRuns.WithLabelValues(metrics.ResultSuccess).Inc()
		notifyErr = s.notifier.Success(ctx, report.Summary())
	}
	if notifyErr != nil {
		s.logger.Warn("notification failed", zap.Error(notifyErr))
	}

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, *report); err != nil {
			s.logger.Warn("report archive failed", zap.Error(err))
		}
	}

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	s.logger.Info("sync run finished",
		zap.String("run_id", report.RunID),
		zap.Bool("failed", report.Failed()),
		zap.Duration("took", time.Since(start)))
}

func (r RunReport) failedCampaigns() []string {
	var failed []string
	for _, c := range r.Campaigns {
		if c.Error != "" {
			failed = append(failed, c.CampaignID)
		}
	}
	return failed
}
