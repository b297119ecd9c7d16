// Package client is the Go API client for the salon server. It plays the
// original frontend's role: fetch lists in parallel, cache them in a
// session store, resolve references, and compute the monthly summary
// locally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"salonledger/internal/core"
	"salonledger/internal/record"
)

// API is a thin HTTP client for the /api endpoint. A failure envelope or a
// transport error both surface as a Go error.
type API struct {
	baseURL string
	httpc   *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewAPIWithClient uses the given http.Client, for tests and custom transports.
func NewAPIWithClient(baseURL string, httpc *http.Client) *API {
	api := NewAPI(baseURL)
	if httpc != nil {
		api.httpc = httpc
	}
	return api
}

func (a *API) do(ctx context.Context, method, url string, body []byte) (map[string]json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call API: %w", err)
	}
	defer resp.Body.Close()

	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode envelope (status %d): %w", resp.StatusCode, err)
	}

	var success bool
	if raw, ok := envelope["success"]; ok {
		_ = json.Unmarshal(raw, &success)
	}
	if !success {
		message := "request failed"
		if raw, ok := envelope["message"]; ok {
			var m string
			if json.Unmarshal(raw, &m) == nil && m != "" {
				message = m
			}
		}
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, message)
	}

	return envelope, nil
}

// List fetches all rows of one kind.
func (a *API) List(ctx context.Context, kind core.Kind) ([]record.Record, error) {
	envelope, err := a.do(ctx, http.MethodGet, a.baseURL+"/api?action="+kind.ListAction(), nil)
	if err != nil {
		return nil, err
	}

	raw, ok := envelope[kind.Plural()]
	if !ok {
		return nil, fmt.Errorf("envelope missing %q payload", kind.Plural())
	}
	var recs []record.Record
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", kind.Plural(), err)
	}
	return recs, nil
}

// Create posts a new row of one kind and returns the server-assigned id
// (the row reference for kinds without identifiers).
func (a *API) Create(ctx context.Context, kind core.Kind, payload map[string]any) (string, error) {
	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["kind"] = kind.String()

	encoded, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	envelope, err := a.do(ctx, http.MethodPost, a.baseURL+"/api", encoded)
	if err != nil {
		return "", err
	}

	var id string
	if raw, ok := envelope["id"]; ok {
		_ = json.Unmarshal(raw, &id)
	}
	return id, nil
}

// MonthlySummary asks the server for its aggregation of one month. The
// session computes the same numbers locally from cached lists; this call is
// for callers without a refreshed session.
func (a *API) MonthlySummary(ctx context.Context, monthKey string) (income, expenses, net string, err error) {
	envelope, err := a.do(ctx, http.MethodGet, a.baseURL+"/api?action=monthlySummary&month="+monthKey, nil)
	if err != nil {
		return "", "", "", err
	}
	decode := func(key string) string {
		var s string
		if raw, ok := envelope[key]; ok {
			_ = json.Unmarshal(raw, &s)
		}
		return s
	}
	return decode("totalIncome"), decode("totalExpenses"), decode("net"), nil
}
