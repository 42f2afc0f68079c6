package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultSearchLimit = 20

// Client talks to the external lead search/enrichment service.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

type searchRequest struct {
	Query    string `json:"query"`
	Limit    int    `json:"limit"`
	Location string `json:"location"`
	UseMock  bool   `json:"use_mock"`
}

// Search runs a lead search. Only query, limit, location and use_mock cross
// the service boundary; the other filter fields stay on our side of the
// contract.
func (c *Client) Search(ctx context.Context, filters SearchFilters) (*SearchResponse, error) {
	if strings.TrimSpace(filters.Query) == "" {
		return nil, ErrEmptyQuery
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	useMock := true
	if filters.UseMock != nil {
		useMock = *filters.UseMock
	}

	body := searchRequest{
		Query:    filters.Query,
		Limit:    limit,
		Location: filters.Location,
		UseMock:  useMock,
	}

	var out SearchResponse
	if err := c.post(ctx, "search", "/leads/search", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type enrichRequest struct {
	Leads           []BaseLead      `json:"leads"`
	UseMock         bool            `json:"use_mock"`
	UserPreferences UserPreferences `json:"user_preferences"`
}

// Enrich asks the service for detail data on the given leads. Preference
// hints are derived from the caller's filters; use_mock is always true
// pending real enrichment sources.
func (c *Client) Enrich(ctx context.Context, baseLeads []BaseLead, prefs UserPreferences) (*EnrichResponse, error) {
	body := enrichRequest{
		Leads:           baseLeads,
		UseMock:         true,
		UserPreferences: prefs,
	}

	var out EnrichResponse
	if err := c.post(ctx, "enrich", "/leads/enrich", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HealthCheck probes the service. Callers gate searching on whether the
// probe succeeded at all, not on the payload.
func (c *Client) HealthCheck(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: "health", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, &UpstreamError{Op: "health", Status: res.StatusCode}
	}

	var status HealthStatus
	if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
		return nil, &UpstreamError{Op: "health", Err: fmt.Errorf("decode response: %w", err)}
	}
	return &status, nil
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return &UpstreamError{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return &UpstreamError{Op: op, Status: res.StatusCode}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &UpstreamError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
