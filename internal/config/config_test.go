package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := parse(map[string]string{})
	require.NoError(t, err)

	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.APIKey)
	require.Equal(t, "https://global-api-development.devotel.io/api/v1", cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, 3, cfg.MaxRetries)
	require.Equal(t, time.Second, cfg.BackoffFactor)
	require.Zero(t, cfg.RateLimit)
}

func TestParse_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := parse(map[string]string{
		"DEVO_API_KEY":        "key-123",
		"DEVO_BASE_URL":       "http://localhost:8080/api/v1",
		"DEVO_TIMEOUT":        "5s",
		"DEVO_MAX_RETRIES":    "0",
		"DEVO_BACKOFF_FACTOR": "250ms",
		"DEVO_RATE_LIMIT":     "2.5",
		"DEVO_RATE_BURST":     "4",
		"LOG_LEVEL":           "debug",
	})
	require.NoError(t, err)

	require.Equal(t, "key-123", cfg.APIKey)
	require.Equal(t, "http://localhost:8080/api/v1", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, 0, cfg.MaxRetries)
	require.Equal(t, 250*time.Millisecond, cfg.BackoffFactor)
	require.InDelta(t, 2.5, cfg.RateLimit, 0.0001)
	require.Equal(t, 4, cfg.RateBurst)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := map[string]map[string]string{
		"malformed timeout":    {"DEVO_TIMEOUT": "soon"},
		"malformed retries":    {"DEVO_MAX_RETRIES": "three"},
		"negative retries":     {"DEVO_MAX_RETRIES": "-1"},
		"malformed rate limit": {"DEVO_RATE_LIMIT": "fast"},
	}

	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := parse(environ)
			require.ErrorContains(t, err, "failed to parse config")
		})
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "DEVO_API_KEY=from-file\nDEVO_MAX_RETRIES=5\n")

	cfg, err := load(map[string]string{}, path)
	require.NoError(t, err)

	require.Equal(t, "from-file", cfg.APIKey)
	require.Equal(t, 5, cfg.MaxRetries)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "DEVO_API_KEY=from-file\nLOG_LEVEL=warn\n")

	cfg, err := load(map[string]string{"DEVO_API_KEY": "from-env"}, path)
	require.NoError(t, err)

	require.Equal(t, "from-env", cfg.APIKey)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FirstFileWins(t *testing.T) {
	t.Parallel()

	first := writeEnvFile(t, "DEVO_API_KEY=first\n")
	second := writeEnvFile(t, "DEVO_API_KEY=second\nDEVO_TIMEOUT=2s\n")

	cfg, err := load(map[string]string{}, first, second)
	require.NoError(t, err)

	require.Equal(t, "first", cfg.APIKey)
	require.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_SkipsMissingFiles(t *testing.T) {
	t.Parallel()

	cfg, err := load(map[string]string{"DEVO_API_KEY": "k"}, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "k", cfg.APIKey)
}

func TestClientOptions(t *testing.T) {
	t.Parallel()

	cfg, err := parse(map[string]string{})
	require.NoError(t, err)
	require.Len(t, cfg.ClientOptions(zerolog.Nop()), 5)

	cfg.RateLimit = 10
	require.Len(t, cfg.ClientOptions(zerolog.Nop()), 6)
}
