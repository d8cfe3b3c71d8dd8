package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validext/pkg/config"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func unsetAll(t *testing.T) {
	t.Helper()
	for _, name := range []string{"RULES", "LANG", "CATALOG", "ALLOW_LIKE", "LOG_LEVEL", "LOG_FORMAT", "CONCURRENCY"} {
		key := config.EnvPrefix + name
		// t.Setenv registers the restore; Unsetenv then removes the value.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := config.Load(writeEnvFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Lang:        "en",
		LogLevel:    "info",
		LogFormat:   "text",
		Concurrency: 4,
	}, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	unsetAll(t)
	t.Setenv("VALIDEXT_RULES", "rules.yaml")
	t.Setenv("VALIDEXT_LANG", "de")
	t.Setenv("VALIDEXT_ALLOW_LIKE", "true")
	t.Setenv("VALIDEXT_CONCURRENCY", "0")

	cfg, err := config.Load(writeEnvFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "rules.yaml", cfg.Rules)
	assert.Equal(t, "de", cfg.Lang)
	assert.True(t, cfg.AllowLike)
	assert.Equal(t, 0, cfg.Concurrency)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetAll(t)
	t.Setenv("VALIDEXT_LANG", "fr")

	path := writeEnvFile(t, "VALIDEXT_CATALOG=messages.yaml\nVALIDEXT_LANG=de\nVALIDEXT_LOG_FORMAT=json\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "messages.yaml", cfg.Catalog)
	assert.Equal(t, "fr", cfg.Lang, "process environment wins over the file")
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		unsetAll(t)
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("unparsable value", func(t *testing.T) {
		unsetAll(t)
		t.Setenv("VALIDEXT_CONCURRENCY", "many")
		_, err := config.Load(writeEnvFile(t, ""))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("negative concurrency", func(t *testing.T) {
		unsetAll(t)
		t.Setenv("VALIDEXT_CONCURRENCY", "-1")
		_, err := config.Load(writeEnvFile(t, ""))
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("unknown log level", func(t *testing.T) {
		unsetAll(t)
		t.Setenv("VALIDEXT_LOG_LEVEL", "loud")
		_, err := config.Load(writeEnvFile(t, ""))
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
