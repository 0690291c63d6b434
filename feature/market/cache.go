package market

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// CachedClient wraps a Client with a TTL cache over offer id listings.
// Offer registration changes far less often than stock, so repeated
// listings within the TTL (status endpoint, inspection commands, tight
// sync intervals) reuse the cached set. Pushes pass straight through.
type CachedClient struct {
	client Client
	cache  *expirable.LRU[string, []string]
	sf     singleflight.Group
}

// NewCachedClient decorates client with an offer id cache. A campaign's
// listing is fetched once per TTL window; concurrent callers share one
// in-flight fetch.
func NewCachedClient(client Client, size int, ttl time.Duration) *CachedClient {
	if size <= 0 {
		size = 8
	}
	return &CachedClient{
		client: client,
		cache:  expirable.NewLRU[string, []string](size, nil, ttl),
	}
}

func (c *CachedClient) OfferIDs(ctx context.Context, campaignID string) ([]string, error) {
	if ids, ok := c.cache.Get(campaignID); ok {
		return ids, nil
	}

	result, err, _ := c.sf.Do(campaignID, func() (interface{}, error) {
		// Double-check after winning the flight.
		if ids, ok := c.cache.Get(campaignID); ok {
			return ids, nil
		}
		ids, err := c.client.OfferIDs(ctx, campaignID)
		if err != nil {
			return nil, err
		}
		c.cache.Add(campaignID, ids)
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

func (c *CachedClient) PushStocks(ctx context.Context, campaignID string, skus []StockUpdate) error {
	return c.client.PushStocks(ctx, campaignID, skus)
}

func (c *CachedClient) PushPrices(ctx context.Context, campaignID string, offers []PriceUpdate) error {
	return c.client.PushPrices(ctx, campaignID, offers)
}

// Invalidate drops the cached listing for one campaign.
func (c *CachedClient) Invalidate(campaignID string) {
	c.cache.Remove(campaignID)
}
