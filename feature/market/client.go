package market

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client defines the marketplace operations the sync service needs.
type Client interface {
	// OfferIDs lists every offer id registered under the campaign,
	// following pagination to exhaustion.
	OfferIDs(ctx context.Context, campaignID string) ([]string, error)
	// PushStocks submits one batch of stock updates.
	PushStocks(ctx context.Context, campaignID string, skus []StockUpdate) error
	// PushPrices submits one batch of price updates.
	PushPrices(ctx context.Context, campaignID string, offers []PriceUpdate) error
}

// NewClient creates an HTTP client for the partner API.
func NewClient(cfg Config, logger *zap.Logger) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	limit := cfg.PageLimit
	if limit <= 0 {
		limit = 200
	}

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		token:   cfg.Token,
		limit:   limit,
		client:  &http.Client{Transport: transport, Timeout: timeoutDuration},
		logger:  logger,
	}
}

type httpClient struct {
	baseURL string
	token   string
	limit   int
	client  *http.Client
	logger  *zap.Logger
}

func (c *httpClient) OfferIDs(ctx context.Context, campaignID string) ([]string, error) {
	var ids []string
	token := ""
	for page := 1; ; page++ {
		result, err := c.fetchOfferPage(ctx, campaignID, token)
		if err != nil {
			return nil, fmt.Errorf("offer page %d: %w", page, err)
		}
		for _, entry := range result.OfferMappingEntries {
			ids = append(ids, entry.Offer.ShopSKU)
		}
		token = result.Paging.NextPageToken
		if token == "" {
			break
		}
	}
	c.logger.Debug("offer ids listed",
		zap.String("campaign", campaignID),
		zap.Int("offers", len(ids)))
	return ids, nil
}

func (c *httpClient) fetchOfferPage(ctx context.Context, campaignID, pageToken string) (*offerMappingResult, error) {
	url := fmt.Sprintf("%s/campaigns/%s/offer-mapping-entries", c.baseURL, campaignID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(c.limit))
	if pageToken != "" {
		q.Set("page_token", pageToken)
	}
	req.URL.RawQuery = q.Encode()
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newStatusError(resp)
	}

	var decoded offerMappingResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode offer page: %w", err)
	}
	if decoded.Result == nil {
		return nil, errors.New("market: offer page without result")
	}
	return decoded.Result, nil
}

func (c *httpClient) PushStocks(ctx context.Context, campaignID string, skus []StockUpdate) error {
	url := fmt.Sprintf("%s/campaigns/%s/offers/stocks", c.baseURL, campaignID)
	if err := c.send(ctx, http.MethodPut, url, stocksRequest{SKUs: skus}); err != nil {
		return err
	}
	c.logger.Debug("stock batch pushed",
		zap.String("campaign", campaignID),
		zap.Int("entries", len(skus)))
	return nil
}

func (c *httpClient) PushPrices(ctx context.Context, campaignID string, offers []PriceUpdate) error {
	url := fmt.Sprintf("%s/campaigns/%s/offer-prices/updates", c.baseURL, campaignID)
	if err := c.send(ctx, http.MethodPost, url, pricesRequest{Offers: offers}); err != nil {
		return err
	}
	c.logger.Debug("price batch pushed",
		zap.String("campaign", campaignID),
		zap.Int("entries", len(offers)))
	return nil
}

func (c *httpClient) send(ctx context.Context, method, url string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return newStatusError(resp)
	}
	return nil
}

func (c *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
