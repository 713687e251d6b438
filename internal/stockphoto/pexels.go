// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package stockphoto wraps the Pexels search API for the dashboard's
// stock photo picker.
package stockphoto

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// perPage matches the dashboard grid size.
const perPage = 15

// Photo is one Pexels result, trimmed to the fields the picker uses.
type Photo struct {
	ID           int64    `json:"id"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	URL          string   `json:"url"`
	Photographer string   `json:"photographer"`
	Alt          string   `json:"alt"`
	Src          PhotoSrc `json:"src"`
}

// PhotoSrc carries the pre-rendered sizes Pexels offers per photo.
type PhotoSrc struct {
	Original  string `json:"original"`
	Large     string `json:"large"`
	Large2x   string `json:"large2x"`
	Medium    string `json:"medium"`
	Small     string `json:"small"`
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
	Tiny      string `json:"tiny"`
}

// SearchResult is the wire shape returned to the dashboard. A failed
// upstream call still produces a result with empty photos and the error
// message embedded; callers inspect the payload, not the status code.
type SearchResult struct {
	Photos  []Photo `json:"photos"`
	Page    int     `json:"page,omitempty"`
	PerPage int     `json:"per_page,omitempty"`
	Total   int     `json:"total_results,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// Client talks to the Pexels search endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates a Pexels client. Returns nil when no API key is configured;
// the search handler reports that per request.
func New(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.pexels.com/v1",
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(base string) { c.baseURL = base }

// Search queries Pexels for photos. Query defaults to "nature" and page
// to 1, matching the picker's initial view.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchResult, error) {
	if query == "" {
		query = "nature"
	}
	if page < 1 {
		page = 1
	}

	u := c.baseURL + "/search?query=" + url.QueryEscape(query) +
		"&per_page=" + strconv.Itoa(perPage) +
		"&page=" + strconv.Itoa(page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("pexels request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pexels read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels API error: %d", resp.StatusCode)
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("pexels unmarshal: %w", err)
	}
	if result.Photos == nil {
		result.Photos = []Photo{}
	}
	return &result, nil
}
