package sync

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"market-sync/core/notify"
	inventorymocks "market-sync/feature/inventory/mocks"
	marketmocks "market-sync/feature/market/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandlerApp(s *Service) *fiber.App {
	app := fiber.New()
	NewHandler(s, zap.NewNop()).RegisterRoutes(app)
	return app
}

func idleService() *Service {
	return NewService(testConfig(), &inventorymocks.Source{}, &marketmocks.Client{}, testCampaigns, notify.Noop{}, nil, zap.NewNop())
}

func TestHandler_Health(t *testing.T) {
	app := newHandlerApp(idleService())

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandler_Status(t *testing.T) {
	t.Run("Idle", func(t *testing.T) {
		app := newHandlerApp(idleService())

		resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, false, body["running"])
		assert.Equal(t, float64(2), body["campaigns"])
		assert.NotContains(t, body, "last_run")
	})

	t.Run("After A Run", func(t *testing.T) {
		source := &inventorymocks.Source{}
		source.On("Load", mock.Anything).Return(nil, nil).Once()
		client := &marketmocks.Client{}
		client.On("OfferIDs", mock.Anything, "111").Return(nil, nil).Once()

		s := NewService(testConfig(), source, client, testCampaigns[:1], notify.Noop{}, nil, zap.NewNop())
		_, err := s.Run(context.Background(), RunOptions{})
		require.NoError(t, err)

		app := newHandlerApp(s)
		resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body, "last_run")
	})
}

func TestHandler_Run(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		source := &inventorymocks.Source{}
		source.On("Load", mock.Anything).Return(testRecords(), nil).Once()
		client := &marketmocks.Client{}
		client.On("OfferIDs", mock.Anything, "111").Return([]string{"sku1"}, nil).Once()
		client.On("PushStocks", mock.Anything, "111", mock.Anything).Return(nil).Once()
		client.On("PushPrices", mock.Anything, "111", mock.Anything).Return(nil).Once()

		s := NewService(testConfig(), source, client, testCampaigns[:1], notify.Noop{}, nil, zap.NewNop())
		app := newHandlerApp(s)

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/run", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var report RunReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, 2, report.Records)
	})

	t.Run("Conflict While Running", func(t *testing.T) {
		s := idleService()
		s.running = true
		app := newHandlerApp(s)

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/run", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("Run Failure", func(t *testing.T) {
		source := &inventorymocks.Source{}
		source.On("Load", mock.Anything).Return(nil, assert.AnError).Once()

		s := NewService(testConfig(), source, &marketmocks.Client{}, testCampaigns, notify.Noop{}, nil, zap.NewNop())
		app := newHandlerApp(s)

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/run", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body, "error")
	})
}
