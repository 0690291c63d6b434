package sync

import (
	"testing"
	"time"

	"market-sync/feature/inventory"
	"market-sync/feature/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reconcileTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func TestBuildStockUpdates(t *testing.T) {
	t.Run("Matched Then Zero Filled", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "sku1", Quantity: ">10", Price: "1 500.00 руб."},
			{Code: "sku2", Quantity: "1", Price: "2000"},
		}
		offerIDs := []string{"sku1", "sku3"}

		updates, stats, err := BuildStockUpdates(records, offerIDs, "777", reconcileTime)
		require.NoError(t, err)
		require.Len(t, updates, 2)

		assert.Equal(t, "sku1", updates[0].SKU)
		assert.Equal(t, 100, updates[0].Items[0].Count)
		assert.Equal(t, "sku3", updates[1].SKU)
		assert.Equal(t, 0, updates[1].Items[0].Count)

		assert.Equal(t, 1, stats.Matched)
		assert.Equal(t, 1, stats.NonZero)
		assert.Equal(t, 1, stats.ZeroFilled)
		assert.Equal(t, 1, stats.SkippedUnknown) // sku2 is not registered
	})

	t.Run("Entry Shape", func(t *testing.T) {
		records := []inventory.Record{{Code: "sku1", Quantity: "5"}}

		updates, _, err := BuildStockUpdates(records, []string{"sku1"}, "777", reconcileTime)
		require.NoError(t, err)
		require.Len(t, updates, 1)

		entry := updates[0]
		assert.Equal(t, "sku1", entry.SKU)
		assert.Equal(t, "777", entry.WarehouseID)
		require.Len(t, entry.Items, 1)
		assert.Equal(t, 5, entry.Items[0].Count)
		assert.Equal(t, "FIT", entry.Items[0].Type)
		assert.Equal(t, "2024-01-15T10:30:00Z", entry.Items[0].UpdatedAt)
	})

	t.Run("Timestamp Shared Across Entries", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "sku1", Quantity: "5"},
			{Code: "sku2", Quantity: "7"},
		}

		updates, _, err := BuildStockUpdates(records, []string{"sku1", "sku2", "sku3"}, "777", time.Now())
		require.NoError(t, err)
		require.Len(t, updates, 3)

		first := updates[0].Items[0].UpdatedAt
		for _, u := range updates[1:] {
			assert.Equal(t, first, u.Items[0].UpdatedAt)
		}
	})

	t.Run("Every Offer Exactly Once", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "sku2", Quantity: "3"},
			{Code: "sku4", Quantity: "9"},
		}
		offerIDs := []string{"sku1", "sku2", "sku3", "sku4", "sku5"}

		updates, _, err := BuildStockUpdates(records, offerIDs, "777", reconcileTime)
		require.NoError(t, err)
		require.Len(t, updates, len(offerIDs))

		seen := make(map[string]int)
		for _, u := range updates {
			seen[u.SKU]++
		}
		for _, id := range offerIDs {
			assert.Equal(t, 1, seen[id], "offer %s", id)
		}
	})

	t.Run("Ordering Is Deterministic", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "sku3", Quantity: "1"},
			{Code: "sku1", Quantity: "2"},
		}
		offerIDs := []string{"sku1", "sku2", "sku3", "sku4"}

		updates, _, err := BuildStockUpdates(records, offerIDs, "777", reconcileTime)
		require.NoError(t, err)

		// Matched entries keep record order, zero fills keep listing order.
		var order []string
		for _, u := range updates {
			order = append(order, u.SKU)
		}
		assert.Equal(t, []string{"sku3", "sku1", "sku2", "sku4"}, order)
	})

	t.Run("Duplicate Code Honors First Occurrence", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "sku1", Quantity: "5"},
			{Code: "sku1", Quantity: "9"},
		}

		updates, stats, err := BuildStockUpdates(records, []string{"sku1"}, "777", reconcileTime)
		require.NoError(t, err)
		require.Len(t, updates, 1)

		assert.Equal(t, 5, updates[0].Items[0].Count)
		assert.Equal(t, 1, stats.SkippedDuplicate)
	})

	t.Run("Duplicate Offer Ids In Listing", func(t *testing.T) {
		updates, _, err := BuildStockUpdates(nil, []string{"sku1", "sku1", "sku2"}, "777", reconcileTime)
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, "sku1", updates[0].SKU)
		assert.Equal(t, "sku2", updates[1].SKU)
	})

	t.Run("Empty Code Skipped", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "", Quantity: "5"},
			{Code: "sku1", Quantity: "5"},
		}

		updates, stats, err := BuildStockUpdates(records, []string{"sku1"}, "777", reconcileTime)
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Equal(t, 1, stats.SkippedEmptyCode)
	})

	t.Run("Empty Snapshot Zero Fills Everything", func(t *testing.T) {
		updates, stats, err := BuildStockUpdates(nil, []string{"sku1", "sku2"}, "777", reconcileTime)
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, 2, stats.ZeroFilled)
		for _, u := range updates {
			assert.Equal(t, 0, u.Items[0].Count)
		}
	})

	t.Run("Empty Listing Yields Nothing", func(t *testing.T) {
		records := []inventory.Record{{Code: "sku1", Quantity: "5"}}

		updates, stats, err := BuildStockUpdates(records, nil, "777", reconcileTime)
		require.NoError(t, err)
		assert.Empty(t, updates)
		assert.Equal(t, 1, stats.SkippedUnknown)
	})

	t.Run("Invalid Quantity Aborts", func(t *testing.T) {
		records := []inventory.Record{{Code: "sku1", Quantity: "many"}}

		_, _, err := BuildStockUpdates(records, []string{"sku1"}, "777", reconcileTime)
		require.Error(t, err)
		assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
	})

	t.Run("Unknown Record Quantity Not Parsed", func(t *testing.T) {
		// A record that is not registered under the campaign must not be
		// able to abort the call, whatever its quantity says.
		records := []inventory.Record{
			{Code: "other", Quantity: "garbage"},
			{Code: "sku1", Quantity: "5"},
		}

		updates, _, err := BuildStockUpdates(records, []string{"sku1"}, "777", reconcileTime)
		require.NoError(t, err)
		require.Len(t, updates, 1)
	})
}

func TestBuildPriceUpdates(t *testing.T) {
	t.Run("Known Codes Only", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "sku1", Price: "1 500.00 руб."},
			{Code: "sku2", Price: "2000"},
		}

		updates, err := BuildPriceUpdates(records, []string{"sku1", "sku3"})
		require.NoError(t, err)
		require.Len(t, updates, 1)

		assert.Equal(t, market.PriceUpdate{
			ID:    "sku1",
			Price: market.PriceValue{Value: 1500, CurrencyID: "RUR"},
		}, updates[0])
	})

	t.Run("Input Order Preserved", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "sku2", Price: "200"},
			{Code: "sku1", Price: "100"},
		}

		updates, err := BuildPriceUpdates(records, []string{"sku1", "sku2"})
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, "sku2", updates[0].ID)
		assert.Equal(t, "sku1", updates[1].ID)
	})

	t.Run("Duplicates Emit Duplicates", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "sku1", Price: "100"},
			{Code: "sku1", Price: "150"},
		}

		updates, err := BuildPriceUpdates(records, []string{"sku1"})
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, int64(100), updates[0].Price.Value)
		assert.Equal(t, int64(150), updates[1].Price.Value)
	})

	t.Run("Never Emits Unknown Codes", func(t *testing.T) {
		records := []inventory.Record{
			{Code: "sku9", Price: "100"},
			{Code: "", Price: "100"},
		}

		updates, err := BuildPriceUpdates(records, []string{"sku1"})
		require.NoError(t, err)
		assert.Empty(t, updates)
	})

	t.Run("Invalid Price Aborts", func(t *testing.T) {
		records := []inventory.Record{{Code: "sku1", Price: "договорная"}}

		_, err := BuildPriceUpdates(records, []string{"sku1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, inventory.ErrInvalidPrice)
	})

	t.Run("Empty Inputs", func(t *testing.T) {
		updates, err := BuildPriceUpdates(nil, []string{"sku1"})
		require.NoError(t, err)
		assert.Empty(t, updates)

		updates, err = BuildPriceUpdates([]inventory.Record{{Code: "sku1", Price: "100"}}, nil)
		require.NoError(t, err)
		assert.Empty(t, updates)
	})
}
