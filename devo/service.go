package devo

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andyle182810/devohub/httpclient"
	"github.com/andyle182810/devohub/validator"
	"github.com/rs/zerolog"
)

const approveYes = "yes"

type service struct {
	http     *httpclient.Client
	validate *validator.Validator
	logger   zerolog.Logger
}

// requireID trims id and rejects blank values before they end up in a URL path.
func (s *service) requireID(field, id string) (string, error) {
	return s.validate.RequireString(field, id)
}

// resourcePath joins segments with '/', escaping each one.
func resourcePath(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}

	return strings.Join(escaped, "/")
}

// queryBuilder collects optional query parameters; zero values are skipped.
type queryBuilder struct {
	opts []httpclient.RequestOption
}

func (q *queryBuilder) str(key, value string) *queryBuilder {
	if value != "" {
		q.opts = append(q.opts, httpclient.WithQuery(key, value))
	}

	return q
}

func (q *queryBuilder) positive(key string, value int) *queryBuilder {
	if value > 0 {
		q.opts = append(q.opts, httpclient.WithQuery(key, strconv.Itoa(value)))
	}

	return q
}

func (q *queryBuilder) integer(key string, value int) *queryBuilder {
	q.opts = append(q.opts, httpclient.WithQuery(key, strconv.Itoa(value)))

	return q
}

func (q *queryBuilder) list(key string, values []string) *queryBuilder {
	if len(values) > 0 {
		q.opts = append(q.opts, httpclient.WithQuery(key, values...))
	}

	return q
}

func (q *queryBuilder) boolean(key string, value *bool) *queryBuilder {
	if value != nil {
		q.opts = append(q.opts, httpclient.WithQuery(key, strconv.FormatBool(*value)))
	}

	return q
}

func (q *queryBuilder) timestamp(key string, value *time.Time) *queryBuilder {
	if value != nil {
		q.opts = append(q.opts, httpclient.WithQuery(key, value.UTC().Format(time.RFC3339)))
	}

	return q
}

func (q *queryBuilder) build() []httpclient.RequestOption {
	return q.opts
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}

	return *value
}
