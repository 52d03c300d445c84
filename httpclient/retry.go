package httpclient

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// The engine falls back to its own jittered backoff when the wait is zero, so never hand it one.
const minRetryWait = time.Millisecond

type noRetryKey struct{}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func retryableMethod(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodHead, http.MethodGet, http.MethodOptions, http.MethodPost:
		return true
	default:
		return false
	}
}

// shouldRetry decides whether the engine spends one more unit of the retry budget.
// Timeouts are never retried so a call stays bounded by the configured timeout.
func (c *Client) shouldRetry(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}

	req := resp.Request
	if !retryableMethod(req.Method) {
		return false
	}

	if noRetry, _ := req.Context().Value(noRetryKey{}).(bool); noRetry {
		return false
	}

	if err != nil {
		return !isTimeout(err) && isConnectionError(err)
	}

	return retryableStatus(resp.StatusCode())
}

// retryWait returns factor * 2^(attempt-1), replaced by Retry-After on 429 and 503.
func (c *Client) retryWait(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	attempt := 1
	if resp.Request != nil && resp.Request.Attempt > 0 {
		attempt = resp.Request.Attempt
	}

	wait := backoffDuration(c.backoffFactor, attempt, c.maxBackoff)

	status := resp.StatusCode()
	if status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable {
		if retryAfter, ok := parseRetryAfter(resp.Header().Get(HeaderRetryAfter), time.Now()); ok {
			wait = min(retryAfter, c.maxBackoff)
		}
	}

	wait = max(wait, minRetryWait)

	c.logger.Warn().
		Int("attempt", attempt).
		Int("status", status).
		Dur("wait", wait).
		Msg("Retrying HTTP request")

	return wait, nil
}

func backoffDuration(factor time.Duration, attempt int, limit time.Duration) time.Duration {
	if factor <= 0 {
		return 0
	}

	wait := factor
	for i := 1; i < attempt; i++ {
		if wait >= limit/2 {
			return limit
		}

		wait *= 2
	}

	return min(wait, limit)
}

func parseRetryAfter(value string, now time.Time) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}

	if at, err := http.ParseTime(value); err == nil {
		return max(at.Sub(now), 0), true
	}

	return 0, false
}
