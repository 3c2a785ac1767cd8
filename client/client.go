package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/uinames/names-contract-tests/framework"
)

const requestIDHeader = "X-Request-Id"

// Client sends requests to the names service. The base URL is fixed when the Client is
// created.
//
// There is deliberately no retry or caching logic: every call to Get is exactly one
// request, and a network error is returned to the caller as-is.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// New creates a Client for the service at baseURL. If httpClient is nil, http.DefaultClient
// is used; its Timeout is the only request timeout.
func New(baseURL string, httpClient *http.Client, logger framework.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// WithLogger returns a copy of the Client that writes debug output to a different logger.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	c1 := *c
	if logger != nil {
		c1.logger = logger
	}
	return &c1
}

// RequestURL returns the URL that Get would request for the given parameters.
func (c *Client) RequestURL(params Params) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid service URL %q: %w", c.baseURL, err)
	}
	q := u.Query()
	for k, vs := range params.Query() {
		q[k] = vs
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Get sends a GET request with the given parameters and reads the whole response.
func (c *Client) Get(ctx context.Context, params Params) (*Response, error) {
	target, err := c.RequestURL(params)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set(requestIDHeader, requestID)

	c.logger.Printf(">> GET %s (%s)", target, requestID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("Request %s failed: %s", requestID, err)
		return nil, fmt.Errorf("GET %s failed: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("Reading response to %s failed: %s", requestID, err)
		return nil, fmt.Errorf("error reading response body from %s: %w", target, err)
	}

	r := &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Proto:      resp.Proto,
		Header:     resp.Header,
		Body:       body,
	}
	c.logger.Printf("<< %s %s: %s", r.StatusLine(), r.ContentType(), string(body))
	return r, nil
}
