// Package devo is a client for the Devo Global Communications REST API.
//
// A Client bundles one service per API resource. Every service shares the same
// transport, so connection reuse, retries and rate limiting apply across all of them.
package devo

import (
	"net/http"
	"time"

	"github.com/andyle182810/devohub/httpclient"
	"github.com/andyle182810/devohub/validator"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	Version        = "0.4.0"
	DefaultBaseURL = "https://global-api-development.devotel.io/api/v1"
)

type Client struct {
	http *httpclient.Client

	SMS           *SMSService
	Email         *EmailService
	WhatsApp      *WhatsAppService
	RCS           *RCSService
	Contacts      *ContactsService
	ContactGroups *ContactGroupsService
	Messages      *MessagesService
}

type config struct {
	baseURL       string
	timeout       time.Duration
	maxRetries    int
	backoffFactor time.Duration
	httpClient    *http.Client
	logger        zerolog.Logger
	rateLimit     rate.Limit
	rateBurst     int
	transportOpts []httpclient.Option
	validate      *validator.Validator
}

type Option func(*config)

func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries sets how many times a retryable failure is retried. Zero disables retries.
func WithMaxRetries(retries int) Option {
	return func(c *config) {
		if retries >= 0 {
			c.maxRetries = retries
		}
	}
}

func WithBackoffFactor(factor time.Duration) Option {
	return func(c *config) {
		if factor >= 0 {
			c.backoffFactor = factor
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRateLimit caps outgoing requests to limit per second with the given burst.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *config) {
		c.rateLimit = limit
		c.rateBurst = burst
	}
}

func WithValidator(v *validator.Validator) Option {
	return func(c *config) {
		c.validate = v
	}
}

// WithTransportOptions passes options straight to the underlying httpclient.Client.
// They are applied after the options derived from this package.
func WithTransportOptions(opts ...httpclient.Option) Option {
	return func(c *config) {
		c.transportOpts = append(c.transportOpts, opts...)
	}
}

// New returns a Client authenticated with apiKey. A blank key fails with httpclient.ErrMissingAPIKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	auth, err := httpclient.NewAPIKeyAuth(apiKey)
	if err != nil {
		return nil, err
	}

	cfg := &config{
		baseURL:       DefaultBaseURL,
		timeout:       httpclient.DefaultTimeout,
		maxRetries:    httpclient.DefaultMaxRetries,
		backoffFactor: httpclient.DefaultBackoffFactor,
		httpClient:    nil,
		logger:        zerolog.Nop(),
		rateLimit:     0,
		rateBurst:     0,
		transportOpts: nil,
		validate:      nil,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	transportOpts := []httpclient.Option{
		httpclient.WithAuth(auth),
		httpclient.WithUserAgent(httpclient.DefaultUserAgent + "/" + Version),
		httpclient.WithTimeout(cfg.timeout),
		httpclient.WithMaxRetries(cfg.maxRetries),
		httpclient.WithBackoffFactor(cfg.backoffFactor),
		httpclient.WithHTTPClient(cfg.httpClient),
		httpclient.WithLogger(cfg.logger),
	}

	if cfg.rateLimit > 0 {
		transportOpts = append(transportOpts, httpclient.WithRateLimit(cfg.rateLimit, max(cfg.rateBurst, 1)))
	}

	transport := httpclient.New(cfg.baseURL, append(transportOpts, cfg.transportOpts...)...)

	validate := cfg.validate
	if validate == nil {
		validate = validator.DefaultRestValidator()
	}

	return newClient(transport, validate, cfg.logger), nil
}

// NewWithTransport wraps an already configured transport. Authentication is the caller's responsibility.
func NewWithTransport(transport *httpclient.Client) *Client {
	return newClient(transport, validator.DefaultRestValidator(), transport.Logger())
}

func newClient(transport *httpclient.Client, validate *validator.Validator, logger zerolog.Logger) *Client {
	svc := func(resource string) service {
		return service{
			http:     transport,
			validate: validate,
			logger:   logger.With().Str("resource", resource).Logger(),
		}
	}

	return &Client{
		http:          transport,
		SMS:           &SMSService{service: svc("sms")},
		Email:         &EmailService{service: svc("email")},
		WhatsApp:      &WhatsAppService{service: svc("whatsapp")},
		RCS:           &RCSService{service: svc("rcs")},
		Contacts:      &ContactsService{service: svc("contacts")},
		ContactGroups: &ContactGroupsService{service: svc("contact_groups")},
		Messages:      &MessagesService{service: svc("messages")},
	}
}

func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

// Transport exposes the shared HTTP client for endpoints this package does not wrap.
func (c *Client) Transport() *httpclient.Client {
	return c.http
}
