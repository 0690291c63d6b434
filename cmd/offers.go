package cmd

import (
	"context"
	"fmt"
	"os"

	"market-sync/core/config"
	"market-sync/core/logger"
	"market-sync/feature/market"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the offers command
	offersSample int
	offersSku    string
)

// offersCmd represents the offers inspection command
var offersCmd = &cobra.Command{
	Use:   "offers [campaign]",
	Short: "List offers registered under the configured campaigns",
	Long: `Fetches the offer listing of the given campaign (id or model name,
e.g. fbs), or of every configured campaign when none is given.

With --sku it reports whether each campaign lists that sku, which is the
first thing to check when a feed row is not reaching the marketplace.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		selector := ""
		if len(args) > 0 {
			selector = args[0]
		}
		runOffersCheck(cmd.Context(), selector)
	},
}

func init() {
	offersCmd.Flags().IntVar(&offersSample, "sample", 10, "Number of offer ids to print per campaign")
	offersCmd.Flags().StringVar(&offersSku, "sku", "", "Check whether this sku is listed")
	RootCmd.AddCommand(offersCmd)
}

func runOffersCheck(ctx context.Context, selector string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	campaigns, err := selectCampaigns(cfg.Market.Campaigns(), selector)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if len(campaigns) == 0 {
		fmt.Println("No campaigns configured.")
		os.Exit(1)
	}

	client := market.NewClient(cfg.Market, logg)

	fmt.Println("\n--- Campaign Offers ---")
	failed := false
	for _, campaign := range campaigns {
		fmt.Printf("\nCampaign:  %s (%s)\n", campaign.ID, campaign.Model)
		fmt.Printf("Warehouse: %s\n", campaign.WarehouseID)

		offerIDs, err := client.OfferIDs(ctx, campaign.ID)
		if err != nil {
			logg.Error("Failed to list offers", zap.String("campaign", campaign.ID), zap.Error(err))
			failed = true
			continue
		}
		fmt.Printf("Offers:    %d\n", len(offerIDs))

		if offersSku != "" {
			found := false
			for _, id := range offerIDs {
				if id == offersSku {
					found = true
					break
				}
			}
			if found {
				fmt.Printf("SKU %q: \033[32mlisted\033[0m\n", offersSku)
			} else {
				fmt.Printf("SKU %q: \033[31mnot listed\033[0m\n", offersSku)
			}
			continue
		}

		show := offersSample
		if len(offerIDs) < show {
			show = len(offerIDs)
		}
		for i := 0; i < show; i++ {
			fmt.Printf("- %s\n", offerIDs[i])
		}
		if len(offerIDs) > show {
			fmt.Printf("... and %d more\n", len(offerIDs)-show)
		}
	}
	fmt.Println("\n-----------------------")

	if failed {
		os.Exit(1)
	}
}
