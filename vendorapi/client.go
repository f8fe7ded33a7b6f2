package vendorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Interval represents the bar granularity for history requests
type Interval string

const (
	I1m  Interval = "1m"  // 1 minute
	I2m  Interval = "2m"  // 2 minutes
	I5m  Interval = "5m"  // 5 minutes
	I15m Interval = "15m" // 15 minutes
	I30m Interval = "30m" // 30 minutes
	I60m Interval = "60m" // 60 minutes
	I90m Interval = "90m" // 90 minutes
	I1h  Interval = "1h"  // 1 hour
	I1d  Interval = "1d"  // 1 day
	I5d  Interval = "5d"  // 5 days
	I1wk Interval = "1wk" // 1 week
	I1mo Interval = "1mo" // 1 month
	I3mo Interval = "3mo" // 3 months
)

// Client is a REST client for the vendor's bar-history endpoint.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a vendor API client against baseURL. The token is sent
// as a bearer credential on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HistoryRequest represents parameters for fetching historical bars
type HistoryRequest struct {
	Symbol   string    // Required: ticker symbol, e.g. "MSFT"
	Start    time.Time // Start of the range, inclusive
	End      time.Time // End of the range, inclusive
	Interval Interval  // Bar granularity (default: I1d)
}

// Bar is one row of vendor history.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// apiBar represents a single bar in the API response
type apiBar struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// historyResponse represents the API response for history
type historyResponse struct {
	Symbol   string   `json:"symbol"`
	Interval string   `json:"interval"`
	Bars     []apiBar `json:"bars"`
}

// GetHistory fetches historical bars from the vendor. An empty range is not
// an error; it comes back as an empty slice.
func (c *Client) GetHistory(ctx context.Context, req HistoryRequest) ([]Bar, error) {
	if req.Symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	if req.Interval == "" {
		req.Interval = I1d
	}

	params := url.Values{}
	params.Set("interval", string(req.Interval))
	if !req.Start.IsZero() {
		params.Set("start", req.Start.Format(time.RFC3339))
	}
	if !req.End.IsZero() {
		params.Set("end", req.End.Format(time.RFC3339))
	}

	apiURL := fmt.Sprintf("%s/v1/history/%s?%s", c.baseURL, url.PathEscape(req.Symbol), params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	bars := make([]Bar, 0, len(apiResp.Bars))
	for _, ab := range apiResp.Bars {
		t, err := time.Parse(time.RFC3339, ab.Time)
		if err != nil {
			return nil, fmt.Errorf("parse time %s: %w", ab.Time, err)
		}
		bars = append(bars, Bar{
			Time:   t,
			Open:   ab.Open,
			High:   ab.High,
			Low:    ab.Low,
			Close:  ab.Close,
			Volume: ab.Volume,
		})
	}

	return bars, nil
}
