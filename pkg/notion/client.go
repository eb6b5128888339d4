package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://api.notion.com"

	// apiVersion pins the wire format; property result shapes are only
	// stable within a version.
	apiVersion = "2022-06-28"
)

// Client is a Notion API client scoped to the two operations this tool
// needs: querying a database and patching a single page.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a client authenticated with the integration token.
func NewClient(ctx context.Context, token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return NewAPIClient(oauth2.NewClient(ctx, src), defaultBaseURL)
}

// NewAPIClient creates a client from an already-configured HTTP client
// and base URL.
func NewAPIClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: baseURL}
}

type queryRequest struct {
	Filter Filter `json:"filter"`
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// QueryDatabase returns the pages in the database matching filter.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter Filter) ([]Page, error) {
	url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, databaseID)

	body, err := json.Marshal(queryRequest{Filter: filter})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query filter: %w", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	var resp queryResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	return resp.Results, nil
}

// UpdatePage applies a partial update to a single page. The body is a
// complete request payload, typically built with patch helpers.
func (c *Client) UpdatePage(ctx context.Context, pageID string, body []byte) error {
	url := fmt.Sprintf("%s/v1/pages/%s", c.baseURL, pageID)
	_, err := c.do(ctx, http.MethodPatch, url, body)
	return err
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s returned status %d: %s", method, url, resp.StatusCode, respBody)
	}
	return respBody, nil
}
