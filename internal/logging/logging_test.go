package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestInitForCLI_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := InitForCLI(slog.LevelWarn, &buf)

	logger.Info("hidden")
	Subsystem(logger, "web").Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "subsystem=web")
}

func TestInitForTUI_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.log")
	logger, closer, err := InitForTUI(slog.LevelDebug, path)
	require.NoError(t, err)

	logger.Debug("hello", "k", "v")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello")
}

func TestInitForTUI_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := InitForTUI(slog.LevelDebug, "")
	require.NoError(t, err)
	logger.Info("nothing")
	assert.NoError(t, closer.Close())
}
