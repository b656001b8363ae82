package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command with args and returns the config it would play
// with
func execute(t *testing.T, args ...string) (*Config, error) {
	t.Helper()

	cfg := &Config{}
	var got *Config
	cmd := newCmd(cfg, func(_ context.Context, c *Config) error {
		got = c
		return nil
	})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return got, err
}

func TestDefaults(t *testing.T) {
	cfg, err := execute(t, "--env-file", "")
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.award)
	assert.Equal(t, "warn", cfg.logLevel)
	assert.False(t, cfg.noColor)
	assert.Equal(t, uint64(0), cfg.seed)
}

func TestFlags(t *testing.T) {
	cfg, err := execute(t, "--env-file", "", "--seed", "42", "--award", "250", "--log_level", "debug", "--no-color")
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.seed)
	assert.Equal(t, 250, cfg.award)
	assert.Equal(t, "debug", cfg.logLevel)
	assert.True(t, cfg.noColor)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("HAKEM_AWARD", "300")
	t.Setenv("HAKEM_SEED", "9")

	cfg, err := execute(t, "--env-file", "", "--seed", "5")
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.award)
	// flags win over the environment
	assert.Equal(t, uint64(5), cfg.seed)
}

func TestEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hakem.env")
	require.NoError(t, os.WriteFile(path, []byte("HAKEM_LOG_LEVEL=error\nHAKEM_NO_COLOR=true\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("HAKEM_LOG_LEVEL")
		os.Unsetenv("HAKEM_NO_COLOR")
	})

	cfg, err := execute(t, "--env-file", path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.logLevel)
	assert.True(t, cfg.noColor)
}

func TestEnvFile_MissingWhenRequested(t *testing.T) {
	_, err := execute(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	_, err := execute(t, "--env-file", "", "--award", "-1")
	assert.Error(t, err)

	_, err = execute(t, "--env-file", "", "--log-level", "loud")
	assert.Error(t, err)
}
