package httpclient

import (
	"strings"
)

// HeaderAPIKey carries the account API key on every request.
const HeaderAPIKey = "X-API-Key"

type AuthProvider interface {
	Headers() map[string]string
}

type APIKeyAuth struct {
	apiKey string
}

var _ AuthProvider = (*APIKeyAuth)(nil)

func NewAPIKeyAuth(apiKey string) (*APIKeyAuth, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	return &APIKeyAuth{apiKey: key}, nil
}

func (a *APIKeyAuth) Headers() map[string]string {
	return map[string]string{
		HeaderAPIKey: a.apiKey,
	}
}
