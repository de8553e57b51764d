// Package sevdesk is a thin client for the sevDesk REST API (v1).
//
// The client owns one HTTP transport, one base URL and one API token for the
// process lifetime. It exposes generic verbs (FetchList, FetchOne, FetchRaw,
// Create, Replace, Remove) plus one typed method per remote endpoint family;
// see endpoints.go.
//
// Every successful response is unwrapped from sevDesk's {objects: ...}
// envelope before it is returned. Error responses carrying an
// {error: {code, message}} envelope surface as *APIError; anything else
// propagates as a transport error. There are no retries, no caching and no
// rate limiting: a single failed call is a single reported failure.
package sevdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"sevdesk-mcp/internal/logger"
)

// DefaultBaseURL is the production sevDesk API endpoint.
const DefaultBaseURL = "https://my.sevdesk.de/api/v1"

// Config holds client construction parameters.
type Config struct {
	// Token is the sevDesk API token, sent as the Authorization header.
	Token string

	// BaseURL overrides the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the transport. Defaults to http.DefaultClient's
	// behavior with no client-side timeout; the transport's own policy applies.
	HTTPClient *http.Client
}

// Client is the single point of outbound communication with sevDesk.
// It holds no per-request mutable state and is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	log     zerolog.Logger
}

// NewClient constructs a Client. It fails with ErrMissingToken when the
// token is absent; no network call is made during construction.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   cfg.Token,
		log:     logger.WithComponent("sevdesk"),
	}, nil
}

// envelope is the wrapper around every successful sevDesk payload.
type envelope struct {
	Objects json.RawMessage `json:"objects"`
}

// errorEnvelope is the wrapper around every sevDesk error payload.
type errorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FetchList issues a GET and returns the unwrapped object collection.
func (c *Client) FetchList(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.doJSON(ctx, "FetchList", http.MethodGet, path, query, nil)
}

// FetchOne issues a GET and returns the unwrapped single object.
func (c *Client) FetchOne(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.doJSON(ctx, "FetchOne", http.MethodGet, path, query, nil)
}

// FetchRaw issues a GET and returns the raw response body, for binary
// payloads such as PDF downloads. No envelope unwrapping is applied.
func (c *Client) FetchRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	body, err := c.do(ctx, "FetchRaw", http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Create issues a POST with a JSON body and returns the unwrapped result.
func (c *Client) Create(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.doJSON(ctx, "Create", http.MethodPost, path, nil, body)
}

// Replace issues a PUT with a JSON body and returns the unwrapped result.
func (c *Client) Replace(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.doJSON(ctx, "Replace", http.MethodPut, path, nil, body)
}

// Remove issues a DELETE. The response body is discarded.
func (c *Client) Remove(ctx context.Context, path string) error {
	_, err := c.do(ctx, "Remove", http.MethodDelete, path, nil, nil)
	return err
}

// doJSON performs a request and unwraps the {objects: ...} envelope.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, body any) (json.RawMessage, error) {
	data, err := c.do(ctx, op, method, path, query, body)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &RequestError{Op: op, Path: path, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}
	if env.Objects == nil {
		// Some endpoints (e.g. Tools/getVersion) respond without the
		// envelope; pass the body through unchanged.
		return data, nil
	}
	return env.Objects, nil
}

// do performs the HTTP request and returns the raw body of a 2xx response.
// Non-2xx responses are turned into *APIError when the error envelope is
// recognizable, otherwise into a transport error carrying status and body.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &RequestError{Op: op, Path: path, Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, &RequestError{Op: op, Path: path, Err: err}
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("sevDesk request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Op: op, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Op: op, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.responseError(op, path, resp.StatusCode, data)
	}
	return data, nil
}

// responseError extracts the sevDesk error envelope from a failed response.
func (c *Client) responseError(op, path string, status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		return &APIError{Code: env.Error.Code, Message: env.Error.Message, Status: status}
	}
	preview := string(body)
	if len(preview) > 200 {
		preview = preview[:200]
	}
	return &RequestError{Op: op, Path: path, Err: fmt.Errorf("unexpected status %d: %s", status, preview)}
}
