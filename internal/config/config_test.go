package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
api:
  title: "GoldenCity Memo API"
  version: "1.0.0"

logger:
  level: ${TEST_UNSET_LOG_LEVEL:-info}

server:
  host: ${TEST_UNSET_HOST:-0.0.0.0}
  port: ${TEST_UNSET_PORT:-8080}
  graceful_shutdown_timeout: 10

http:
  cors_allowed_origins: ${TEST_UNSET_ORIGINS:-*}
  rate_limit_rps: 100
  rate_limit_burst: 10
`)

	cfg, err := InitConfig[Config](path)
	require.NoError(t, err)

	assert.Equal(t, "GoldenCity Memo API", cfg.API.Title)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	// Дефолт из ${VAR:-default} должен стать числом, а не строкой
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.HTTP.Origins())
}

func TestInitConfig_EnvOverride(t *testing.T) {
	t.Setenv("TEST_MEMO_PORT", "9090")
	t.Setenv("TEST_MEMO_ORIGINS", "http://a.example, http://b.example")

	path := writeConfigFile(t, `
api:
  title: "t"
  version: "v"

logger:
  level: info

server:
  host: localhost
  port: ${TEST_MEMO_PORT:-8080}

http:
  cors_allowed_origins: ${TEST_MEMO_ORIGINS:-*}
`)

	cfg, err := InitConfig[Config](path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	// Пробелы вокруг origins убираются
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.HTTP.Origins())
}

func TestInitConfig_FileMissing(t *testing.T) {
	_, err := InitConfig[Config](filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestExpandEnvWithDefaults(t *testing.T) {
	t.Setenv("TEST_MEMO_SET", "value")

	tests := []struct {
		in   string
		want string
	}{
		{"${TEST_MEMO_SET:-fallback}", "value"},
		{"${TEST_MEMO_UNSET:-fallback}", "fallback"},
		{"${TEST_MEMO_UNSET}", ""},
		{"plain", "plain"},
		{"prefix-${TEST_MEMO_SET:-x}-suffix", "prefix-value-suffix"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, expandEnvWithDefaults(tt.in), "input %q", tt.in)
	}
}
