package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "possible_words.json", cfg.Cache)
	assert.Equal(t, "", cfg.Dict)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("WORDLADDER_LOG_LEVEL", "debug")
	t.Setenv("WORDLADDER_CACHE", "/tmp/cands.json")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/cands.json", cfg.Cache)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordladder.yaml")
	yaml := "cache: primed.json\nlog-level: warn\nlisten: ':9090'\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "primed.json", cfg.Cache)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.Listen)
}

// TestLoad_Precedence checks flags > environment > file > defaults.
func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordladder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: warn\n"), 0o644))

	t.Setenv("WORDLADDER_LOG_LEVEL", "debug")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")

	// environment beats the file while the flag is unset
	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	// an explicitly set flag beats the environment
	require.NoError(t, flags.Set("log-level", "trace"))
	cfg, err = config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}
