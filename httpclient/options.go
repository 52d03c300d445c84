package httpclient

import (
	"io"
	"maps"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout       = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultBackoffFactor = time.Second
	DefaultMaxBackoff    = 120 * time.Second
	DefaultUserAgent     = "devohub-go"

	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderUserAgent   = "User-Agent"
	HeaderXRequestID  = "X-Request-ID"
	HeaderRetryAfter  = "Retry-After"
	ContentTypeJSON   = "application/json"
)

type Option func(*Client)

func WithAuth(provider AuthProvider) Option {
	return func(c *Client) {
		c.auth = provider
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries sets the retry budget. Zero disables retries.
func WithMaxRetries(retries int) Option {
	return func(c *Client) {
		if retries >= 0 {
			c.maxRetries = retries
		}
	}
}

// WithBackoffFactor sets the wait before the first retry; each further retry doubles it.
func WithBackoffFactor(factor time.Duration) Option {
	return func(c *Client) {
		if factor >= 0 {
			c.backoffFactor = factor
		}
	}
}

func WithMaxBackoff(limit time.Duration) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxBackoff = limit
		}
	}
}

// WithHTTPClient uses a copy of httpClient; the caller's Timeout is not modified.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.defaultHeaders[HeaderUserAgent] = userAgent
		}
	}
}

func WithRequestIDKey(key any) Option {
	return func(c *Client) {
		c.requestIDKey = key
	}
}

func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.defaultHeaders, headers)
	}
}

func WithMaxResponseSize(size int64) Option {
	return func(c *Client) {
		c.maxResponseSize = size
	}
}

// WithRateLimit throttles outgoing requests with a token bucket shared by all callers of the client.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

type RequestOption func(*requestConfig)

type multipartPart struct {
	field       string
	fileName    string
	contentType string
	reader      io.Reader
}

type requestConfig struct {
	headers   map[string]string
	query     url.Values
	body      any
	parts     []multipartPart
	fields    map[string]string
	timeout   time.Duration
	requestID string
}

func WithRequestHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string)
		}

		rc.headers[key] = value
	}
}

func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(rc *requestConfig) {
		rc.timeout = timeout
	}
}

func WithRequestID(requestID string) RequestOption {
	return func(rc *requestConfig) {
		rc.requestID = requestID
	}
}

// WithQuery appends values for key; several values encode as a repeated key.
func WithQuery(key string, values ...string) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = make(url.Values)
		}

		for _, value := range values {
			rc.query.Add(key, value)
		}
	}
}

func WithQueryParams(params map[string]string) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = make(url.Values)
		}

		for k, v := range params {
			rc.query.Set(k, v)
		}
	}
}

func WithJSONBody(body any) RequestOption {
	return func(rc *requestConfig) {
		rc.body = body
	}
}

func WithMultipartFile(field, fileName, contentType string, reader io.Reader) RequestOption {
	return func(rc *requestConfig) {
		rc.parts = append(rc.parts, multipartPart{
			field:       field,
			fileName:    fileName,
			contentType: contentType,
			reader:      reader,
		})
	}
}

func WithMultipartField(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.fields == nil {
			rc.fields = make(map[string]string)
		}

		rc.fields[key] = value
	}
}
