package sync

import (
	"fmt"
	"time"

	"market-sync/feature/inventory"
	"market-sync/feature/market"
)

// StockStats counts what the stock reconciler did with its input.
type StockStats struct {
	// Matched is the number of inventory records that updated a known offer.
	Matched int
	// ZeroFilled is the number of known offers absent from the inventory,
	// reset to zero stock.
	ZeroFilled int
	// SkippedUnknown is the number of records whose code is not registered
	// under the campaign.
	SkippedUnknown int
	// SkippedDuplicate is the number of records repeating an earlier code.
	SkippedDuplicate int
	// SkippedEmptyCode is the number of records with no code at all.
	SkippedEmptyCode int
	// NonZero is the number of entries carrying actual stock, i.e. the
	// offers buyers can still order.
	NonZero int
}

// BuildStockUpdates combines an inventory snapshot with the campaign's
// offer id listing into a complete stock update list: one entry per listed
// offer id, exactly once. Records matching a listed offer come first, in
// record order; offers without a record follow, zero-filled, in listing
// order. When a code repeats in the snapshot only the first occurrence
// counts. All entries share a single updatedAt timestamp taken from now.
func BuildStockUpdates(records []inventory.Record, offerIDs []string, warehouseID string, now time.Time) ([]market.StockUpdate, StockStats, error) {
	updatedAt := now.UTC().Format(time.RFC3339)

	remaining := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		remaining[id] = struct{}{}
	}
	seen := make(map[string]struct{}, len(records))

	var stats StockStats
	updates := make([]market.StockUpdate, 0, len(offerIDs))

	for _, rec := range records {
		if rec.Code == "" {
			stats.SkippedEmptyCode++
			continue
		}
		if _, dup := seen[rec.Code]; dup {
			stats.SkippedDuplicate++
			continue
		}
		seen[rec.Code] = struct{}{}

		if _, known := remaining[rec.Code]; !known {
			stats.SkippedUnknown++
			continue
		}

		count, err := inventory.ParseQuantity(rec.Quantity)
		if err != nil {
			return nil, stats, fmt.Errorf("offer %s: %w", rec.Code, err)
		}

		updates = append(updates, stockEntry(rec.Code, warehouseID, count, updatedAt))
		delete(remaining, rec.Code)
		stats.Matched++
		if count != 0 {
			stats.NonZero++
		}
	}

	// Offers the snapshot never mentioned are out of stock. Walk the
	// original listing so the output order is deterministic.
	for _, id := range offerIDs {
		if _, unmatched := remaining[id]; !unmatched {
			continue
		}
		delete(remaining, id)
		updates = append(updates, stockEntry(id, warehouseID, 0, updatedAt))
		stats.ZeroFilled++
	}

	return updates, stats, nil
}

func stockEntry(sku, warehouseID string, count int, updatedAt string) market.StockUpdate {
	return market.StockUpdate{
		SKU:         sku,
		WarehouseID: warehouseID,
		Items: []market.StockItem{{
			Count:     count,
			Type:      market.StockType,
			UpdatedAt: updatedAt,
		}},
	}
}

// BuildPriceUpdates emits one price update per inventory record whose code
// is registered under the campaign, in record order. Membership is the only
// filter: a code repeated in the snapshot yields repeated entries, and the
// marketplace applies the last one.
func BuildPriceUpdates(records []inventory.Record, offerIDs []string) ([]market.PriceUpdate, error) {
	known := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		known[id] = struct{}{}
	}

	updates := make([]market.PriceUpdate, 0, len(records))
	for _, rec := range records {
		if _, ok := known[rec.Code]; !ok {
			continue
		}
		value, err := inventory.ParsePrice(rec.Price)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", rec.Code, err)
		}
		updates = append(updates, market.PriceUpdate{
			ID: rec.Code,
			Price: market.PriceValue{
				Value:      value,
				CurrencyID: market.CurrencyRUR,
			},
		})
	}
	return updates, nil
}
