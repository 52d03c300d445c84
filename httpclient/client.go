package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/andyle182810/devohub/logutil"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL         string
	engine          *resty.Client
	httpClient      *http.Client
	auth            AuthProvider
	logger          zerolog.Logger
	limiter         *rate.Limiter
	requestIDKey    any
	defaultHeaders  map[string]string
	timeout         time.Duration
	maxRetries      int
	backoffFactor   time.Duration
	maxBackoff      time.Duration
	maxResponseSize int64 // 0 means no limit
}

// New builds a client whose HTTP engine, and with it the connection pool, is shared by every call.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		defaultHeaders: map[string]string{
			HeaderUserAgent: DefaultUserAgent,
			HeaderAccept:    ContentTypeJSON,
		},
		baseURL:         strings.TrimRight(baseURL, "/"),
		engine:          nil,
		httpClient:      nil,
		auth:            nil,
		logger:          zerolog.Nop(),
		limiter:         nil,
		requestIDKey:    nil,
		timeout:         DefaultTimeout,
		maxRetries:      DefaultMaxRetries,
		backoffFactor:   DefaultBackoffFactor,
		maxBackoff:      DefaultMaxBackoff,
		maxResponseSize: 0,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.engine = c.newEngine()

	return c
}

func (c *Client) newEngine() *resty.Client {
	var engine *resty.Client
	if c.httpClient != nil {
		// resty sets Timeout on the client it wraps, so the caller's value stays untouched.
		httpClient := *c.httpClient
		engine = resty.NewWithClient(&httpClient)
	} else {
		engine = resty.New()
	}

	return engine.
		SetTimeout(c.timeout).
		SetRetryCount(c.maxRetries).
		SetRetryWaitTime(minRetryWait).
		SetRetryMaxWaitTime(c.maxBackoff).
		SetRetryAfter(c.retryWait).
		AddRetryCondition(c.shouldRetry).
		SetLogger(logutil.NewRestyLogger(c.logger))
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Logger() zerolog.Logger {
	return c.logger
}

// Request executes one authenticated call and returns the raw response for any status below 400.
func (c *Client) Request(
	ctx context.Context,
	method string,
	path string,
	opts ...RequestOption,
) (*Response, error) {
	cfg := c.buildRequestConfig(ctx, opts...)

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	req, err := c.buildRequest(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, classifyTransportError(err)
		}
	}

	fullURL := c.buildURL(path)
	start := time.Now()

	resp, err := req.Execute(method, fullURL)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("method", method).
			Str("url", fullURL).
			Str("request_id", cfg.requestID).
			Dur("latency", time.Since(start)).
			Msg("HTTP request failed")

		return nil, classifyTransportError(err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", fullURL).
		Int("status", resp.StatusCode()).
		Int("attempts", resp.Request.Attempt).
		Str("request_id", cfg.requestID).
		Dur("latency", time.Since(start)).
		Msg("HTTP request completed")

	return c.handleResponse(resp, cfg.requestID)
}

func (c *Client) Get(
	ctx context.Context,
	path string,
	response any,
	opts ...RequestOption,
) error {
	return c.Do(ctx, http.MethodGet, path, nil, response, opts...)
}

func (c *Client) Post(
	ctx context.Context,
	path string,
	body any,
	response any,
	opts ...RequestOption,
) error {
	return c.Do(ctx, http.MethodPost, path, body, response, opts...)
}

func (c *Client) Put(
	ctx context.Context,
	path string,
	body any,
	response any,
	opts ...RequestOption,
) error {
	return c.Do(ctx, http.MethodPut, path, body, response, opts...)
}

func (c *Client) Patch(
	ctx context.Context,
	path string,
	body any,
	response any,
	opts ...RequestOption,
) error {
	return c.Do(ctx, http.MethodPatch, path, body, response, opts...)
}

func (c *Client) Delete(
	ctx context.Context,
	path string,
	response any,
	opts ...RequestOption,
) error {
	return c.Do(ctx, http.MethodDelete, path, nil, response, opts...)
}

func (c *Client) Do(
	ctx context.Context,
	method string,
	path string,
	body any,
	response any,
	opts ...RequestOption,
) error {
	if body != nil {
		opts = append(slices.Clip(opts), WithJSONBody(body))
	}

	resp, err := c.Request(ctx, method, path, opts...)
	if err != nil {
		return err
	}

	return resp.Decode(response)
}

func (c *Client) buildRequestConfig(ctx context.Context, opts ...RequestOption) *requestConfig {
	cfg := &requestConfig{
		headers:   make(map[string]string),
		query:     nil,
		body:      nil,
		parts:     nil,
		fields:    nil,
		timeout:   0,
		requestID: "",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.requestID == "" {
		cfg.requestID = c.extractRequestID(ctx)
	}

	return cfg
}

func (c *Client) extractRequestID(ctx context.Context) string {
	if c.requestIDKey != nil {
		if id, ok := ctx.Value(c.requestIDKey).(string); ok && id != "" {
			return id
		}
	}

	return uuid.New().String()
}

func (c *Client) buildRequest(ctx context.Context, cfg *requestConfig) (*resty.Request, error) {
	req := c.engine.R()

	for k, v := range c.defaultHeaders {
		req.SetHeader(k, v)
	}

	for k, v := range cfg.headers {
		req.SetHeader(k, v)
	}

	req.SetHeader(HeaderXRequestID, cfg.requestID)

	// Auth goes last so caller headers can never replace it.
	if c.auth != nil {
		req.SetHeaders(c.auth.Headers())
	}

	if len(cfg.query) > 0 {
		req.SetQueryParamsFromValues(cfg.query)
	}

	switch {
	case len(cfg.parts) > 0 || len(cfg.fields) > 0:
		for _, part := range cfg.parts {
			req.SetMultipartField(part.field, part.fileName, part.contentType, part.reader)
		}

		if len(cfg.fields) > 0 {
			req.SetMultipartFormData(cfg.fields)
		}

		// Multipart readers are consumed by the first attempt.
		ctx = context.WithValue(ctx, noRetryKey{}, true)
	case cfg.body != nil:
		payload, err := json.Marshal(cfg.body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		req.SetHeader(HeaderContentType, ContentTypeJSON)
		req.SetBody(payload)
	}

	return req.SetContext(ctx), nil
}

func (c *Client) handleResponse(resp *resty.Response, requestID string) (*Response, error) {
	respRequestID := resp.Header().Get(HeaderXRequestID)
	if respRequestID == "" {
		respRequestID = requestID
	}

	body := resp.Body()

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, c.handleErrorResponse(resp, body, respRequestID)
	}

	if c.maxResponseSize > 0 && int64(len(body)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       body,
		RequestID:  respRequestID,
	}, nil
}

func (c *Client) handleErrorResponse(resp *resty.Response, body []byte, requestID string) error {
	message, code := parseErrorBody(resp.StatusCode(), body)

	apiErr := NewAPIError(resp.StatusCode(), message, code, requestID)
	apiErr.Header = resp.Header()
	apiErr.Body = body

	c.logger.Debug().
		Int("status", apiErr.StatusCode).
		Str("code", apiErr.Code).
		Str("request_id", requestID).
		Msg(apiErr.Message)

	return apiErr
}

func (c *Client) buildURL(path string) string {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return c.baseURL
	}

	return c.baseURL + "/" + path
}
