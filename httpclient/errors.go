package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

var (
	ErrMissingAPIKey    = errors.New("httpclient: API key is required")
	ErrRequestFailed    = errors.New("httpclient: request failed")
	ErrTimeout          = errors.New("httpclient: request timed out")
	ErrConnection       = errors.New("httpclient: connection error")
	ErrServiceError     = errors.New("httpclient: service error")
	ErrAuthentication   = errors.New("httpclient: authentication failed")
	ErrRateLimited      = errors.New("httpclient: rate limit exceeded")
	ErrDecodeResponse   = errors.New("httpclient: failed to decode response")
	ErrEncodeBody       = errors.New("httpclient: failed to encode request body")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")
)

// APIError is returned for every response with a status of 400 or above.
// Unwrap yields exactly one of ErrAuthentication, ErrRateLimited or ErrServiceError.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
	RequestID  string
	Header     http.Header
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("httpclient: status %d: %s (code %s)", e.StatusCode, e.Message, e.Code)
	}

	return fmt.Sprintf("httpclient: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuthentication
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrServiceError
	}
}

func NewAPIError(statusCode int, message, code, requestID string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
		RequestID:  requestID,
		Header:     nil,
		Body:       nil,
	}
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// classifyTransportError maps a failure that produced no HTTP response onto the error taxonomy.
func classifyTransportError(err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	if isConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}
