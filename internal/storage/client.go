// Package storage is the HTTP client for the record storage service.
// It speaks the two-endpoint contract the planner consumes: list a full
// collection, and upsert one record. Nothing in this package understands
// itinerary semantics — records are opaque bags.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/msoren/trip-atlas/internal/domain"
)

// AuthHeader is the shared-key credential header expected by the storage
// service on every request.
const AuthHeader = "x-auth"

// StatusError is the typed failure for a storage call that reached the
// server but was rejected, or whose response did not match the contract.
// Callers surface Message and, for batch mutations, trigger rollback.
type StatusError struct {
	Op         string // "list" or "upsert"
	StatusCode int    // HTTP status; 0 when the envelope was malformed
	Status     string // server-reported status string, when present
}

func (e *StatusError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("storage %s failed: unexpected response", e.Op)
	}
	if e.Status != "" {
		return fmt.Sprintf("storage %s failed: HTTP %d (%s)", e.Op, e.StatusCode, e.Status)
	}
	return fmt.Sprintf("storage %s failed: HTTP %d", e.Op, e.StatusCode)
}

// Client talks to one storage service and one collection.
type Client struct {
	base       string
	collection string
	authKey    string
	http       *http.Client
}

// New constructs a Client. httpClient may be nil, in which case
// http.DefaultClient is used; timeouts and retries are the transport's
// concern, not this client's.
func New(baseURL, collection, authKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: baseURL, collection: collection, authKey: authKey, http: httpClient}
}

// Collection returns the collection this client reads and writes.
func (c *Client) Collection() string { return c.collection }

// envelope is the success response shape for collection reads:
// {"status":"ok","data":[...]}. Any other shape is an error.
type envelope struct {
	Status string            `json:"status"`
	Data   []json.RawMessage `json:"data"`
}

// ListCollection fetches every record in the collection.
func (c *Client) ListCollection(ctx context.Context) ([]domain.Record, error) {
	u := c.base + "/storage/collection?collection=" + url.QueryEscape(c.collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("storage.Client.ListCollection: %w", err)
	}
	req.Header.Set(AuthHeader, c.authKey)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage.Client.ListCollection: %w", err)
	}
	defer res.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(res.Body).Decode(&env)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &StatusError{Op: "list", StatusCode: res.StatusCode, Status: env.Status}
	}
	if decodeErr != nil || env.Status != "ok" || env.Data == nil {
		return nil, &StatusError{Op: "list"}
	}

	records := make([]domain.Record, 0, len(env.Data))
	for _, raw := range env.Data {
		var rec domain.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			// A single unreadable record is the builder's problem to skip,
			// not a reason to fail the load.
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// UpsertRecord creates or replaces one record. The record's fields are sent
// as-is with the collection name added; the service keys on (collection, key).
func (c *Client) UpsertRecord(ctx context.Context, record domain.Record) error {
	body := make(map[string]any, len(record)+1)
	for k, v := range record {
		body[k] = v
	}
	body["collection"] = c.collection

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("storage.Client.UpsertRecord: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/storage", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("storage.Client.UpsertRecord: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(AuthHeader, c.authKey)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("storage.Client.UpsertRecord: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var env envelope
		_ = json.NewDecoder(res.Body).Decode(&env)
		return &StatusError{Op: "upsert", StatusCode: res.StatusCode, Status: env.Status}
	}
	return nil
}
