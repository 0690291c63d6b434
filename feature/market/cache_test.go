package market_test

import (
	"context"
	"testing"
	"time"

	"market-sync/feature/market"
	"market-sync/feature/market/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachedClient_OfferIDs(t *testing.T) {
	t.Run("Second Call Hits Cache", func(t *testing.T) {
		inner := &mocks.Client{}
		inner.On("OfferIDs", mock.Anything, "12345").Return([]string{"sku1", "sku2"}, nil).Once()

		cached := market.NewCachedClient(inner, 8, time.Minute)

		for i := 0; i < 3; i++ {
			ids, err := cached.OfferIDs(context.Background(), "12345")
			require.NoError(t, err)
			assert.Equal(t, []string{"sku1", "sku2"}, ids)
		}
		inner.AssertExpectations(t)
	})

	t.Run("Campaigns Cached Independently", func(t *testing.T) {
		inner := &mocks.Client{}
		inner.On("OfferIDs", mock.Anything, "111").Return([]string{"a"}, nil).Once()
		inner.On("OfferIDs", mock.Anything, "222").Return([]string{"b"}, nil).Once()

		cached := market.NewCachedClient(inner, 8, time.Minute)

		ids, err := cached.OfferIDs(context.Background(), "111")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, ids)

		ids, err = cached.OfferIDs(context.Background(), "222")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, ids)

		inner.AssertExpectations(t)
	})

	t.Run("Expires After TTL", func(t *testing.T) {
		inner := &mocks.Client{}
		inner.On("OfferIDs", mock.Anything, "12345").Return([]string{"sku1"}, nil).Twice()

		cached := market.NewCachedClient(inner, 8, 30*time.Millisecond)

		_, err := cached.OfferIDs(context.Background(), "12345")
		require.NoError(t, err)

		time.Sleep(80 * time.Millisecond)

		_, err = cached.OfferIDs(context.Background(), "12345")
		require.NoError(t, err)
		inner.AssertExpectations(t)
	})

	t.Run("Errors Are Not Cached", func(t *testing.T) {
		inner := &mocks.Client{}
		inner.On("OfferIDs", mock.Anything, "12345").Return(nil, assert.AnError).Once()
		inner.On("OfferIDs", mock.Anything, "12345").Return([]string{"sku1"}, nil).Once()

		cached := market.NewCachedClient(inner, 8, time.Minute)

		_, err := cached.OfferIDs(context.Background(), "12345")
		require.Error(t, err)

		ids, err := cached.OfferIDs(context.Background(), "12345")
		require.NoError(t, err)
		assert.Equal(t, []string{"sku1"}, ids)
		inner.AssertExpectations(t)
	})

	t.Run("Invalidate Forces Refetch", func(t *testing.T) {
		inner := &mocks.Client{}
		inner.On("OfferIDs", mock.Anything, "12345").Return([]string{"sku1"}, nil).Twice()

		cached := market.NewCachedClient(inner, 8, time.Minute)

		_, err := cached.OfferIDs(context.Background(), "12345")
		require.NoError(t, err)

		cached.Invalidate("12345")

		_, err = cached.OfferIDs(context.Background(), "12345")
		require.NoError(t, err)
		inner.AssertExpectations(t)
	})
}

func TestCachedClient_PushesPassThrough(t *testing.T) {
	inner := &mocks.Client{}
	inner.On("PushStocks", mock.Anything, "12345", mock.Anything).Return(nil).Once()
	inner.On("PushPrices", mock.Anything, "12345", mock.Anything).Return(nil).Once()

	cached := market.NewCachedClient(inner, 8, time.Minute)

	require.NoError(t, cached.PushStocks(context.Background(), "12345", nil))
	require.NoError(t, cached.PushPrices(context.Background(), "12345", nil))
	inner.AssertExpectations(t)
}
