package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultTimeout is the fixed per-request deadline. Callers see ErrTimeout
// when it elapses.
const DefaultTimeout = 15 * time.Second

// Client is the HTTP wrapper for the hosted backend's REST surface: row
// storage, RPC procedures, object storage, and auth sessions.
type Client struct {
	baseURL    string
	anonKey    string
	token      string // per-user bearer; anon key when empty
	timeout    time.Duration
	httpClient *http.Client
}

// Config configures a backend Client.
type Config struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

// NewClient creates a new backend client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    cfg.URL,
		anonKey:    cfg.AnonKey,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// WithToken returns a shallow copy authenticated as the session owner.
// Row-level authorization happens server-side based on this token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Query narrows a Select call. All Eq filters are ANDed.
type Query struct {
	Eq      map[string]string
	In      map[string][]string
	Order   string // column name
	Desc    bool
	Limit   int
	Columns string // projection, defaults to *
}

func (q Query) encode() string {
	v := url.Values{}
	cols := q.Columns
	if cols == "" {
		cols = "*"
	}
	v.Set("select", cols)
	for col, val := range q.Eq {
		v.Set(col, "eq."+val)
	}
	for col, vals := range q.In {
		v.Set(col, "in.("+joinCSV(vals)+")")
	}
	if q.Order != "" {
		order := q.Order
		if q.Desc {
			order += ".desc"
		}
		v.Set("order", order)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v.Encode()
}

func joinCSV(vals []string) string {
	out := ""
	for i, v := range vals {
		if i > 0 {
			out += ","
		}
		out += v
	}
	return out
}

// Select reads rows from a table into out (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table string, q Query, out any) error {
	path := fmt.Sprintf("/rest/v1/%s?%s", table, q.encode())
	return c.do(ctx, http.MethodGet, path, nil, out, nil)
}

// Insert writes rows (a struct or slice) and decodes the created rows into
// out when out is non-nil.
func (c *Client) Insert(ctx context.Context, table string, rows any, out any) error {
	path := fmt.Sprintf("/rest/v1/%s", table)
	headers := map[string]string{"Prefer": "return=representation"}
	return c.do(ctx, http.MethodPost, path, rows, out, headers)
}

// Update applies patch to all rows matching the eq filters.
func (c *Client) Update(ctx context.Context, table string, eq map[string]string, patch any) error {
	path := fmt.Sprintf("/rest/v1/%s?%s", table, eqQuery(eq))
	return c.do(ctx, http.MethodPatch, path, patch, nil, nil)
}

// Delete removes all rows matching the query filters.
func (c *Client) Delete(ctx context.Context, table string, q Query) error {
	v := url.Values{}
	for col, val := range q.Eq {
		v.Set(col, "eq."+val)
	}
	for col, vals := range q.In {
		v.Set(col, "in.("+joinCSV(vals)+")")
	}
	path := fmt.Sprintf("/rest/v1/%s?%s", table, v.Encode())
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Upsert inserts rows, merging on conflict.
func (c *Client) Upsert(ctx context.Context, table string, rows any, out any) error {
	path := fmt.Sprintf("/rest/v1/%s", table)
	headers := map[string]string{"Prefer": "resolution=merge-duplicates,return=representation"}
	return c.do(ctx, http.MethodPost, path, rows, out, headers)
}

// RPC invokes a server-side procedure and decodes its result into out.
func (c *Client) RPC(ctx context.Context, fn string, params any, out any) error {
	path := fmt.Sprintf("/rest/v1/rpc/%s", fn)
	return c.do(ctx, http.MethodPost, path, params, out, nil)
}

func eqQuery(eq map[string]string) string {
	v := url.Values{}
	for col, val := range eq {
		v.Set(col, "eq."+val)
	}
	return v.Encode()
}

// do performs one request under the fixed timeout and classifies failures.
func (c *Client) do(ctx context.Context, method, path string, body, out any, headers map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.bearerToken())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return classifyStatus(resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode backend response: %w", err)
		}
	}
	return nil
}

func (c *Client) bearerToken() string {
	if c.token != "" {
		return c.token
	}
	return c.anonKey
}
