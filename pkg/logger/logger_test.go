package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profiler/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with static and context attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "profiler")),
			logger.WithContextValue("request_id", ctxKey{}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "wordlist generated", logger.WordCount(42), logger.TargetName("Aryan"))

		rec := decode(t, &buf)
		assert.Equal(t, "wordlist generated", rec["msg"])
		assert.Equal(t, "profiler", rec["service"])
		assert.Equal(t, "req-1", rec["request_id"])
		assert.Equal(t, float64(42), rec["word_count"])
		assert.Equal(t, "Aryan", rec["target_name"])
	})

	t.Run("context attribute absent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("request_id", ctxKey{}))

		log.With(logger.Component("runner")).Info("x")

		rec := decode(t, &buf)
		assert.NotContains(t, rec, "request_id")
		assert.Equal(t, "runner", rec["component"])
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevelName("warn"))

		log.Info("dropped")
		assert.Zero(t, buf.Len())
		log.Warn("kept")
		assert.NotZero(t, buf.Len())
	})

	t.Run("development preset is text at debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("dev", "profiler"))

		log.Debug("hello")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "env=development")
		assert.Contains(t, buf.String(), "service=profiler")
	})

	t.Run("production preset is json at info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("prod", "profiler"))

		log.Debug("dropped")
		assert.Zero(t, buf.Len())
		log.Info("kept")
		assert.Equal(t, "production", decode(t, &buf)["env"])
	})

	t.Run("invalid options panic", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithLevelName("loud")) })
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.Equal(t, "abc", logger.RequestID("abc").Value.String())
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, int64(7), logger.SeedCount(7).Value.Int64())
	assert.True(t, logger.Cached(true).Value.Bool())
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
