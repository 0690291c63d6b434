package mocks

import (
	"context"

	"market-sync/feature/market"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of market.Client
type Client struct {
	mock.Mock
}

func (m *Client) OfferIDs(ctx context.Context, campaignID string) ([]string, error) {
	args := m.Called(ctx, campaignID)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) PushStocks(ctx context.Context, campaignID string, skus []market.StockUpdate) error {
	args := m.Called(ctx, campaignID, skus)
	return args.Error(0)
}

func (m *Client) PushPrices(ctx context.Context, campaignID string, offers []market.PriceUpdate) error {
	args := m.Called(ctx, campaignID, offers)
	return args.Error(0)
}
