// Package http implements the request dispatcher: it executes single HTTP
// exchanges against the platform API and reduces every outcome to either a
// decoded response or a classified *turso.Error.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/vitalis/turso/internal/auth"
	"github.com/vitalis/turso/internal/constants"
	"github.com/vitalis/turso/pkg/turso"
)

// Request describes one HTTP call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw outcome of a completed exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client dispatches requests against a fixed base URL. Each Do call issues
// exactly one network request unless the caller opted into transport
// retries via WithRetryConfig.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       auth.TokenProvider
	logger       turso.Logger
	debug        bool
	userAgent    string
	interceptors *turso.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug logging.
func WithLogger(logger turso.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig swaps the transport for one that retries transient
// failures (connection errors, 429s, 5xx) with exponential backoff. Without
// this option no request is ever reissued.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = retryMax
		retryClient.RetryWaitMin = waitMin
		retryClient.RetryWaitMax = waitMax
		retryClient.Logger = nil
		retryClient.HTTPClient.Timeout = c.httpClient.Timeout

		c.httpClient = retryClient.StandardClient()
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithInterceptors attaches an interceptor chain executed around every
// exchange.
func WithInterceptors(chain *turso.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a dispatcher for baseURL. tokens may be nil for
// unauthenticated use (tests, mostly).
func NewClient(baseURL string, tokens auth.TokenProvider, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		userAgent:  constants.DefaultUserAgent,
		httpClient: &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes one request. A 2xx exchange returns the raw body; any other
// completed exchange returns the response alongside a classified
// *turso.Error, and a transport failure returns a classified error alone.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	bodyBytes, err := marshalBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	ireq := &turso.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: make(http.Header),
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		if err := c.interceptors.ExecuteRequestInterceptors(ctx, ireq); err != nil {
			return nil, err
		}
	}

	httpReq, err := c.buildRequest(ctx, req, bodyBytes, ireq.Headers)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, turso.ClassifyTransport(err, req.Method, req.Path)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, turso.ClassifyTransport(err, req.Method, req.Path)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		})
	}

	var apiErr *turso.Error
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr = turso.ClassifyResponse(resp.StatusCode, respBody, req.Method, req.Path)
	}

	if c.interceptors != nil {
		iresp := &turso.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       respBody,
		}
		if apiErr != nil {
			iresp.Error = apiErr
		}

		if err := c.interceptors.ExecuteResponseInterceptors(ctx, ireq, iresp); err != nil {
			return resp, err
		}
	}

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

func (c *Client) buildRequest(ctx context.Context, req *Request, body []byte, extraHeaders http.Header) (*http.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, values := range extraHeaders {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

func marshalBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	if raw, ok := body.([]byte); ok {
		return raw, nil
	}

	return json.Marshal(body)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
