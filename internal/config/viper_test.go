package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInitializeConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, ",", cfg.Export.Delimiter)
	assert.True(t, cfg.Export.IncludeHeaders)
}

func TestInitializeConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `log:
  level: debug
api:
  base_url: https://admin.example.com/api
  timeout_seconds: 10
export:
  delimiter: ";"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
	chdir(t, dir)

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://admin.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.API.TimeoutSeconds)
	assert.Equal(t, ";", cfg.Export.Delimiter)
	// Untouched values keep their defaults.
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestInitializeConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n"), 0600))
	chdir(t, dir)
	t.Setenv("PARSECTL_LOG_LEVEL", "warn")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestInitializeConfig_TokenFromUnprefixedEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ADMIN_API_TOKEN", "secret-token")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret-token", cfg.API.Token)
}

func TestInitializeConfig_GeminiKeyFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PARSECTL_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "gm-key", cfg.AI.APIKey)
}

func TestInitializeConfig_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "PARSECTL_LOG_LEVEL", "loud"},
		{"bad log format", "PARSECTL_LOG_FORMAT", "xml"},
		{"timeout too small", "PARSECTL_API_TIMEOUT_SECONDS", "0"},
		{"timeout too large", "PARSECTL_API_TIMEOUT_SECONDS", "900"},
		{"multi-char delimiter", "PARSECTL_EXPORT_DELIMITER", ";;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestInitializeConfig_AIEnabledRequiresKey(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PARSECTL_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeGlobalConfig(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, InitializeGlobalConfig())
	// Repeated calls return the first outcome without reloading.
	require.NoError(t, InitializeGlobalConfig())

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	// The shared logger was rebuilt from the loaded configuration.
	assert.Equal(t, cfg.Log.Level, Logger.GetLevel().String())
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	require.NotNil(t, logger)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
