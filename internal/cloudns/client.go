package cloudns

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production ClouDNS API endpoint.
const DefaultBaseURL = "https://api.cloudns.net"

// Client is an HTTP API client for the ClouDNS REST API. Authentication is a
// sub-auth-user/auth-password pair merged into the parameters of every call:
// GET requests carry everything in the query string, POST requests send a
// form-encoded body.
type Client struct {
	baseURL      string
	authUser     string
	authPassword string
	httpClient   *http.Client
}

// NewClient creates a new ClouDNS API client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL, authUser, authPassword string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:      baseURL,
		authUser:     authUser,
		authPassword: authPassword,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// authValues returns the authentication parameters carried by every call.
func (c *Client) authValues() url.Values {
	v := url.Values{}
	v.Set("sub-auth-user", c.authUser)
	v.Set("auth-password", c.authPassword)
	return v
}

// get performs a query-string GET request against the API.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

// post performs a form-encoded POST request against the API.
func (c *Client) post(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// GetZoneInfo probes whether domain is a registered zone on the account.
func (c *Client) GetZoneInfo(ctx context.Context, domain string) (*ZoneInfo, error) {
	params := c.authValues()
	params.Set("domain-name", domain)

	respBody, err := c.get(ctx, "/dns/get-zone-info.json", params)
	if err != nil {
		return nil, err
	}

	var info ZoneInfo
	if err := json.Unmarshal(respBody, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zone info for %s: %w", domain, err)
	}

	return &info, nil
}

// ListRecords returns the records for host in zone, filtered by record type,
// keyed by record id. The API responds with an empty JSON array instead of an
// empty object when nothing matches; that case yields an empty map.
func (c *Client) ListRecords(ctx context.Context, zone, host, recordType string) (map[string]Record, error) {
	params := c.authValues()
	params.Set("domain-name", zone)
	params.Set("host", host)
	params.Set("type", recordType)

	respBody, err := c.get(ctx, "/dns/records.json", params)
	if err != nil {
		return nil, err
	}

	records := map[string]Record{}
	if err := json.Unmarshal(respBody, &records); err != nil {
		var empty []any
		if arrErr := json.Unmarshal(respBody, &empty); arrErr == nil && len(empty) == 0 {
			return records, nil
		}
		return nil, fmt.Errorf("failed to unmarshal records for %s in %s: %w", host, zone, err)
	}

	return records, nil
}

// AddRecord creates a record in zone. The caller checks the returned result
// for a provider-level rejection; a non-nil error only covers transport and
// decoding failures.
func (c *Client) AddRecord(ctx context.Context, zone, host, recordType, value, ttl string) (*MutationResult, error) {
	params := c.authValues()
	params.Set("domain-name", zone)
	params.Set("host", host)
	params.Set("record-type", recordType)
	params.Set("record", value)
	params.Set("ttl", ttl)

	respBody, err := c.post(ctx, "/dns/add-record.json", params)
	if err != nil {
		return nil, err
	}

	var result MutationResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal add-record result: %w", err)
	}

	return &result, nil
}

// ModifyRecord rewrites the record identified by recordID in zone.
func (c *Client) ModifyRecord(ctx context.Context, zone, recordID, host, recordType, value, ttl string) (*MutationResult, error) {
	params := c.authValues()
	params.Set("domain-name", zone)
	params.Set("record-id", recordID)
	params.Set("host", host)
	params.Set("record-type", recordType)
	params.Set("record", value)
	params.Set("ttl", ttl)

	respBody, err := c.post(ctx, "/dns/mod-record.json", params)
	if err != nil {
		return nil, err
	}

	var result MutationResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mod-record result: %w", err)
	}

	return &result, nil
}
