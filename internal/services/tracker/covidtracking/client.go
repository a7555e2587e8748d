// Package covidtracking fetches the daily feeds of the COVID Tracking Project
// API.
package covidtracking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultBaseURL is the public API host.
const DefaultBaseURL = "https://api.covidtracking.com"

const (
	usDailyPath     = "/v1/us/daily.json"
	statesDailyPath = "/v1/states/daily.json"
	dateLayout      = "20060102"
)

// Date is a feed date encoded as a YYYYMMDD number.
type Date struct {
	time.Time
}

// UnmarshalJSON accepts 20210307 and "20210307".
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("parse feed date %q: %w", raw, err)
	}
	d.Time = parsed
	return nil
}

// MarshalJSON writes the YYYYMMDD number back.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(d.Format(dateLayout)), nil
}

// DailyRecord is one row of either feed. Counters are nil when the feed
// reports null.
type DailyRecord struct {
	Date                 Date   `json:"date"`
	State                string `json:"state,omitempty"`
	Positive             *int64 `json:"positive"`
	Death                *int64 `json:"death"`
	Recovered            *int64 `json:"recovered"`
	PositiveIncrease     *int64 `json:"positiveIncrease"`
	DeathIncrease        *int64 `json:"deathIncrease"`
	HospitalizedIncrease *int64 `json:"hospitalizedIncrease"`
}

// Client calls the feed endpoints under a base URL.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a feed client. An empty baseURL uses DefaultBaseURL and a
// nil client uses a traced default client.
func NewClient(baseURL string, client *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	return &Client{baseURL: baseURL, client: client}
}

// NewTracedClient returns an HTTP client with a request timeout whose
// requests are recorded as client spans.
func NewTracedClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// BaseURL returns the configured API host.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// USDaily fetches the national daily series.
func (c *Client) USDaily(ctx context.Context) ([]DailyRecord, error) {
	return c.fetch(ctx, usDailyPath)
}

// StatesDaily fetches the per-state daily series.
func (c *Client) StatesDaily(ctx context.Context) ([]DailyRecord, error) {
	return c.fetch(ctx, statesDailyPath)
}

func (c *Client) fetch(ctx context.Context, path string) ([]DailyRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", path, resp.Status)
	}

	var records []DailyRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	return records, nil
}

// Int64 returns a pointer to v for building records.
func Int64(v int64) *int64 {
	return &v
}

