package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/deppfellow/invoice-dashboard/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, 5, GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, 4, GetPgxTraceLogLevel(zerolog.InfoLevel))
	assert.Equal(t, 1, GetPgxTraceLogLevel(zerolog.Disabled))
}

func TestNewLoggerService(t *testing.T) {
	t.Run("Should skip New Relic without a license key", func(t *testing.T) {
		service := NewLoggerService(config.DefaultObservabilityConfig())
		assert.Nil(t, service.GetApplication())
		service.Shutdown()
	})
}

func TestWithTraceContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	logger := WithTraceContext(base, nil)
	logger.Info().Msg("no txn")

	assert.NotContains(t, buf.String(), "trace.id")
}

func TestFromContext(t *testing.T) {
	t.Run("Should return the logger stored in the context", func(t *testing.T) {
		var buf bytes.Buffer
		stored := zerolog.New(&buf).With().Str("request_id", "req-1").Logger()
		ctx := stored.WithContext(context.Background())

		FromContext(ctx).Info().Msg("hello")

		assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	})

	t.Run("Should return a usable logger for a bare context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			FromContext(context.Background()).Info().Msg("dropped")
		})
	})
}
