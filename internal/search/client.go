// Package search is the client for the free-text place search collaborator.
// It targets a Nominatim-format endpoint; geocoding quality is entirely the
// collaborator's responsibility.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Candidate is one search result with a resolved position.
type Candidate struct {
	Name     string
	Location string
	Lat      float64
	Lng      float64
}

// Client issues search requests. Cancellation is the caller's job: issue
// each search with a context and cancel the previous one when the user
// types again — a canceled request returns ctx.Err() and its result is
// discarded without surfacing an error to the user.
type Client struct {
	base string
	http *http.Client
}

// New constructs a Client for the given search endpoint base URL.
// httpClient may be nil.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: baseURL, http: httpClient}
}

// nominatimResult is the subset of the jsonv2 response shape we consume.
// Lat/lon arrive as strings.
type nominatimResult struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search returns candidates for a free-text query, best match first.
// Results with an unparseable position are dropped.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "jsonv2")
	q.Set("limit", "8")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("search.Client.Search: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search.Client.Search: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search.Client.Search: HTTP %d", res.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(res.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("search.Client.Search: decode: %w", err)
	}

	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lng, errLng := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLng != nil {
			continue
		}
		name := r.Name
		if name == "" {
			name = r.DisplayName
		}
		candidates = append(candidates, Candidate{
			Name:     name,
			Location: r.DisplayName,
			Lat:      lat,
			Lng:      lng,
		})
	}
	return candidates, nil
}
