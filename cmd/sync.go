package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"market-sync/core/config"
	"market-sync/core/database"
	"market-sync/core/logger"
	"market-sync/core/notify"
	"market-sync/core/storage"
	"market-sync/feature/inventory"
	"market-sync/feature/market"
	"market-sync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncStocksOnly   bool
	syncPricesOnly   bool
	syncCampaignOnly string
)

// syncCmd runs one full sync cycle and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one stock and price sync cycle",
	Long: `Loads the inventory snapshot, reconciles it against every configured
campaign and pushes stock and price updates to the partner API.

Exits non-zero when the snapshot cannot be loaded or any campaign fails.

Examples:
  # Full run across all configured campaigns
  market-sync sync

  # Stock counts only, single campaign
  market-sync sync --stocks-only --campaign fbs`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncStocksOnly, "stocks-only", false, "Push stock updates only")
	syncCmd.Flags().BoolVar(&syncPricesOnly, "prices-only", false, "Push price updates only")
	syncCmd.Flags().StringVar(&syncCampaignOnly, "campaign", "", "Sync a single campaign (id or model name, e.g. fbs)")
	syncCmd.MarkFlagsMutuallyExclusive("stocks-only", "prices-only")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	campaigns, err := selectCampaigns(cfg.Market.Campaigns(), syncCampaignOnly)
	if err != nil {
		return err
	}
	if len(campaigns) == 0 {
		return errors.New("no campaigns configured: set market.campaign_fbs or market.campaign_dbs")
	}

	svc, err := buildService(cmd.Context(), cfg, campaigns, logg)
	if err != nil {
		return err
	}

	report, err := svc.Run(cmd.Context(), sync.RunOptions{
		StocksOnly: syncStocksOnly,
		PricesOnly: syncPricesOnly,
	})
	if err != nil {
		return err
	}

	fmt.Println(report.Summary())
	return nil
}

// selectCampaigns narrows the configured campaigns to the requested one.
// The selector matches a campaign id or its model name (fbs, dbs); empty
// keeps the full list.
func selectCampaigns(campaigns []market.Campaign, selector string) ([]market.Campaign, error) {
	if selector == "" {
		return campaigns, nil
	}
	for _, c := range campaigns {
		if c.ID == selector || strings.EqualFold(c.Model, selector) {
			return []market.Campaign{c}, nil
		}
	}
	return nil, fmt.Errorf("campaign %q is not configured", selector)
}

// buildService wires the sync service from configuration. The storage
// client is created once and shared between the feed source and the
// report archiver when both need it.
func buildService(ctx context.Context, cfg *config.Config, campaigns []market.Campaign, logg *zap.Logger) (*sync.Service, error) {
	var store storage.Client
	if cfg.Inventory.Source == inventory.SourceS3 || cfg.Sync.ArchiveReports {
		s, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		exists, err := s.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
		}
		store = s
	}

	var source inventory.Source
	switch cfg.Inventory.Source {
	case inventory.SourceDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		source = inventory.NewDatabaseSource(db, cfg.Inventory.Table, logg)
	case inventory.SourceS3:
		source = inventory.NewS3Source(store, cfg.Storage.Bucket, cfg.Inventory, logg)
	default:
		return nil, fmt.Errorf("unknown inventory source %q", cfg.Inventory.Source)
	}

	client := market.NewClient(cfg.Market, logg)
	if cfg.Sync.OfferCacheTTLSeconds > 0 {
		ttl := time.Duration(cfg.Sync.OfferCacheTTLSeconds) * time.Second
		client = market.NewCachedClient(client, cfg.Sync.OfferCacheSize, ttl)
	}

	var archiver sync.Archiver
	if cfg.Sync.ArchiveReports {
		archiver = sync.NewS3Archiver(store, cfg.Storage.Bucket, cfg.Sync.ArchivePrefix)
	}

	return sync.NewService(cfg.Sync, source, client, campaigns, notify.New(cfg.Notify), archiver, logg), nil
}
