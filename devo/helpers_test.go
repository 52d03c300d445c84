package devo_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/andyle182810/devohub/devo"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// apiStub answers every request with a fixed status and body and records what it received.
type apiStub struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newAPIStub(t *testing.T, status int, body string) *apiStub {
	t.Helper()

	stub := &apiStub{
		server:   nil,
		mu:       sync.Mutex{},
		requests: nil,
		status:   status,
		body:     body,
	}

	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		payload, _ := io.ReadAll(req.Body)

		stub.mu.Lock()
		stub.requests = append(stub.requests, recordedRequest{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.Query(),
			Header: req.Header.Clone(),
			Body:   payload,
		})
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stub.status)
		_, _ = w.Write([]byte(stub.body))
	}))
	t.Cleanup(stub.server.Close)

	return stub
}

func (s *apiStub) client(t *testing.T, opts ...devo.Option) *devo.Client {
	t.Helper()

	opts = append([]devo.Option{
		devo.WithBaseURL(s.server.URL + "/api/v1"),
		devo.WithBackoffFactor(0),
	}, opts...)

	client, err := devo.New(testAPIKey, opts...)
	require.NoError(t, err)

	return client
}

func (s *apiStub) calls() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}

func (s *apiStub) lastRequest(t *testing.T) recordedRequest {
	t.Helper()

	calls := s.calls()
	require.NotEmpty(t, calls)

	return calls[len(calls)-1]
}
