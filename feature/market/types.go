package market

// StockType is the only stock type the partner API accepts for availability
// counts.
const StockType = "FIT"

// CurrencyRUR is the fixed currency for price updates.
const CurrencyRUR = "RUR"

// StockItem is one availability figure inside a stock update.
type StockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// StockUpdate sets the stock level of one offer at one warehouse.
type StockUpdate struct {
	SKU         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []StockItem `json:"items"`
}

// PriceValue is the amount half of a price update.
type PriceValue struct {
	Value      int64  `json:"value"`
	CurrencyID string `json:"currencyId"`
}

// PriceUpdate sets the price of one offer.
type PriceUpdate struct {
	ID    string     `json:"id"`
	Price PriceValue `json:"price"`
}

// Request bodies.

type stocksRequest struct {
	SKUs []StockUpdate `json:"skus"`
}

type pricesRequest struct {
	Offers []PriceUpdate `json:"offers"`
}

// Offer listing wire shapes.

type offerMappingResponse struct {
	Result *offerMappingResult `json:"result"`
}

type offerMappingResult struct {
	OfferMappingEntries []offerMappingEntry `json:"offerMappingEntries"`
	Paging              paging              `json:"paging"`
}

type offerMappingEntry struct {
	Offer offerInfo `json:"offer"`
}

type offerInfo struct {
	ShopSKU string `json:"shopSku"`
}

type paging struct {
	NextPageToken string `json:"nextPageToken"`
}
