// Package store is the client for the storefront's upstream orders API.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"salesbadge/internal/config"
	"salesbadge/internal/metrics"
	"salesbadge/internal/models"
)

// APIError is a non-success response from the upstream API. It is logged by
// callers but never echoed to end clients.
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store API %s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// Client talks to the store's v2 orders API using the static credential pair.
type Client struct {
	baseURL   string
	storeHash string
	token     string
	client    *http.Client
}

// New creates a store API client from the configured credentials.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.StoreAPIURL,
		storeHash: cfg.StoreHash,
		token:     cfg.StoreToken,
		client: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
	}
}

// ListRecentOrders fetches up to limit order summaries created at or after
// minDate. A 204 from the upstream means no matching orders and yields an
// empty slice, not an error.
func (c *Client) ListRecentOrders(ctx context.Context, minDate time.Time, limit int) ([]models.Order, error) {
	q := url.Values{}
	q.Set("min_date_created", minDate.UTC().Format(time.RFC1123Z))
	q.Set("limit", strconv.Itoa(limit))

	var orders []models.Order
	if err := c.getJSON(ctx, "/v2/orders?"+q.Encode(), "orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrderProducts fetches the line items of a single order.
func (c *Client) ListOrderProducts(ctx context.Context, orderID int) ([]models.OrderProduct, error) {
	path := fmt.Sprintf("/v2/orders/%d/products", orderID)

	var products []models.OrderProduct
	if err := c.getJSON(ctx, path, "order_products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// getJSON performs an authenticated GET and decodes the JSON body into out.
// out is left untouched on 204 responses.
func (c *Client) getJSON(ctx context.Context, path, endpoint string, out any) error {
	reqURL := c.baseURL + "/" + c.storeHash + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set("X-Auth-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(endpoint, "network_error")
		return fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		metrics.RecordUpstreamRequest(endpoint, "empty")
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordUpstreamRequest(endpoint, "http_error")
		return &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordUpstreamRequest(endpoint, "decode_error")
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	metrics.RecordUpstreamRequest(endpoint, "ok")
	return nil
}
