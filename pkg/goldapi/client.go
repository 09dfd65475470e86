// Package goldapi is the typed client for the gold-prices REST API.
//
// Calls never return transport errors to the caller: a failed call records a
// human-readable message on the client and returns a safe empty default. The
// loading and error flags are shared across calls, last write wins, so
// concurrent calls on one client must not assume isolation.
package goldapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/atomic"

	"github.com/vogiahuy257/GoldDataProject/internal/model"
)

// Fields is the writable subset of a quote sent on create and update.
// Nil fields are left out of the payload.
type Fields struct {
	Source    *string    `json:"source,omitempty"`
	GoldType  *string    `json:"gold_type,omitempty"`
	BuyPrice  *string    `json:"buy_price,omitempty"`
	SellPrice *string    `json:"sell_price,omitempty"`
	Date      *string    `json:"date,omitempty"`
	Time      *string    `json:"time,omitempty"`
	ScrapedAt *time.Time `json:"scraped_at,omitempty"`
}

// String returns a pointer to v, for building Fields literals.
func String(v string) *string {
	return &v
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	loading atomic.Bool
	lastErr atomic.String
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Minute}
	}

	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Loading reports whether a call is in flight.
func (c *Client) Loading() bool {
	return c.loading.Load()
}

// Err returns the message of the last failed call, or "" after a success.
func (c *Client) Err() string {
	return c.lastErr.Load()
}

// GetAll fetches every stored quote. On failure it returns an empty slice.
func (c *Client) GetAll(ctx context.Context) []model.GoldPrice {
	c.begin()
	defer c.finish()

	var rows []model.GoldPrice
	if err := c.do(ctx, http.MethodGet, "/gold-prices", nil, &rows); err != nil {
		c.lastErr.Store("Failed to fetch all")
		return []model.GoldPrice{}
	}

	return rows
}

// GetByID fetches one quote. On failure it returns nil.
func (c *Client) GetByID(ctx context.Context, id int64) *model.GoldPrice {
	c.begin()
	defer c.finish()

	var row model.GoldPrice
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/gold-prices/%d", id), nil, &row); err != nil {
		c.lastErr.Store("Failed to fetch by ID")
		return nil
	}

	return &row
}

// GetBySource fetches the quotes of one vendor. On failure it returns an empty slice.
func (c *Client) GetBySource(ctx context.Context, source string) []model.GoldPrice {
	c.begin()
	defer c.finish()

	var rows []model.GoldPrice
	if err := c.do(ctx, http.MethodGet, "/gold-prices/source/"+source, nil, &rows); err != nil {
		c.lastErr.Store("Failed to fetch by source")
		return []model.GoldPrice{}
	}

	return rows
}

// Create stores a new quote and returns it, or nil on failure.
func (c *Client) Create(ctx context.Context, fields Fields) *model.GoldPrice {
	c.begin()
	defer c.finish()

	var row model.GoldPrice
	if err := c.do(ctx, http.MethodPost, "/gold-prices", fields, &row); err != nil {
		c.lastErr.Store("Failed to create")
		return nil
	}

	return &row
}

// Update patches an existing quote and returns it, or nil on failure.
func (c *Client) Update(ctx context.Context, id int64, fields Fields) *model.GoldPrice {
	c.begin()
	defer c.finish()

	var row model.GoldPrice
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/gold-prices/%d", id), fields, &row); err != nil {
		c.lastErr.Store("Failed to update")
		return nil
	}

	return &row
}

// Remove deletes a quote and reports whether the API confirmed it.
func (c *Client) Remove(ctx context.Context, id int64) bool {
	c.begin()
	defer c.finish()

	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/gold-prices/%d", id), nil, nil); err != nil {
		c.lastErr.Store("Failed to delete")
		return false
	}

	return true
}

func (c *Client) begin() {
	c.loading.Store(true)
	c.lastErr.Store("")
}

func (c *Client) finish() {
	c.loading.Store(false)
}

// do performs one round trip and decodes the JSON body into out.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
