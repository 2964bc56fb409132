// pkg/logging/logging_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Environment variables
// PURPOSE: Test logger configuration and log file placement

package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/ampenv/pkg/logging"
)

func TestLogFilePath(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	assert.Equal(t, filepath.Join(stateHome, "ampenv", "ampenv.log"), logging.LogFilePath())
}

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.level, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestGetLogger(t *testing.T) {
	logger := logging.GetLogger("env")
	// Component loggers must be usable without further setup
	logger.Debug().Msg("probe")
}
