package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/tablesync/lib/config"
)

func TestNewLogger(t *testing.T) {
	{
		// Nil settings
		log, loggingToSentry := NewLogger(nil)
		assert.NotNil(t, log)
		assert.False(t, loggingToSentry)
	}
	{
		// Verbose
		log, loggingToSentry := NewLogger(&config.Settings{VerboseLogging: true})
		assert.False(t, loggingToSentry)
		assert.True(t, log.Handler().Enabled(t.Context(), slog.LevelDebug))
	}
	{
		// Sentry with an empty DSN is skipped
		settings := &config.Settings{}
		settings.Config.Reporting.Sentry = &config.Sentry{}
		_, loggingToSentry := NewLogger(settings)
		assert.False(t, loggingToSentry)
	}
}
