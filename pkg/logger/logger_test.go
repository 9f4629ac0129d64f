package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familydom/domkit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithService("domkit"))
		log.Info("session established", slog.String("user_id", "u-1"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "session established", record["msg"])
		assert.Equal(t, "domkit", record["service"])
		assert.Equal(t, "u-1", record["user_id"])
	})

	t.Run("debug suppressed at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Debug("noise")

		assert.Empty(t, buf.String())
	})

	t.Run("development mode uses text and debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment(), logger.WithOutput(&buf))
		log.Debug("verbose detail")

		assert.True(t, strings.Contains(buf.String(), "verbose detail"))
		assert.False(t, strings.HasPrefix(buf.String(), "{"))
	})
}
