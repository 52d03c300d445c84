package logutil_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/andyle182810/devohub/logutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRestyLogger_MapsLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		log       func(l *logutil.RestyLogger)
		wantLevel string
	}{
		{
			name:      "errors are downgraded to warn",
			log:       func(l *logutil.RestyLogger) { l.Errorf("attempt %d failed\n", 1) },
			wantLevel: "warn",
		},
		{
			name:      "warnings",
			log:       func(l *logutil.RestyLogger) { l.Warnf("attempt %d failed\n", 1) },
			wantLevel: "warn",
		},
		{
			name:      "debug",
			log:       func(l *logutil.RestyLogger) { l.Debugf("attempt %d failed\n", 1) },
			wantLevel: "debug",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			testCase.log(logutil.NewRestyLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

			var entry map[string]string
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			require.Equal(t, testCase.wantLevel, entry["level"])
			require.Equal(t, "resty", entry["component"])
			require.Equal(t, "attempt 1 failed", entry["message"])
		})
	}
}

func TestRestyLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logutil.NewRestyLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	logger.Debugf("hidden")

	require.Empty(t, buf.String())
}
