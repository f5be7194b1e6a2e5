package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FOLIO_ADDR", "")
	t.Setenv("FOLIO_CONTENT_DIR", "")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "public", cfg.Out)
	assert.False(t, cfg.Watch)
}

func TestLoad_FileThenEnvThenFlags(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.yaml"),
		[]byte("addr: \":9000\"\nlogLevel: warn\ncontentDir: ./site\n"), 0644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "./site", cfg.ContentDir)

	t.Setenv("FOLIO_LOG_LEVEL", "debug")
	cfg, err = Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", "", "")
	flags.String("content", "", "")
	require.NoError(t, flags.Parse([]string{"--addr", ":7000"}))
	cfg, err = Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "./site", cfg.ContentDir, "unset flags must not override")
}

func TestLoad_ExplicitMissingFileIsError(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load("does-not-exist.yaml", nil)
	assert.Error(t, err)
}
