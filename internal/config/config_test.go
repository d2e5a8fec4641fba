package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/w4b_v3/server/beeview/internal/config"
)

// writeConfig is a test helper that writes YAML content to a temp file
// and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.local
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Server.TrustProxyHeaders)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 500, cfg.Pagination.MaxLimit)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "info", cfg.Monitoring.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.local
  user: viewer
pagination:
  default_limit: 25
`)
	t.Setenv("BEEVIEW_DATABASE__HOST", "db.prod")
	t.Setenv("BEEVIEW_REDIS__HOST", "cache.prod")
	t.Setenv("BEEVIEW_REDIS__RATE_LIMIT", "30")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.prod", cfg.Database.Host)
	assert.Equal(t, "viewer", cfg.Database.User)
	assert.Equal(t, 25, cfg.Pagination.DefaultLimit)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache.prod:6379", cfg.Redis.Addr())
	assert.Equal(t, 30, cfg.Redis.RateLimit)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "missing database host",
			content: "server:\n  port: 9000\n",
			errMsg:  "database host is required",
		},
		{
			name:    "default limit above max",
			content: "database:\n  host: db\npagination:\n  default_limit: 50\n  max_limit: 10\n",
			errMsg:  "default_limit must be between 1 and 10",
		},
		{
			name:    "zero default limit",
			content: "database:\n  host: db\npagination:\n  default_limit: 0\n",
			errMsg:  "default_limit must be between 1 and 500",
		},
		{
			name:    "redis without rate limit",
			content: "database:\n  host: db\nredis:\n  host: cache\n  rate_limit: 0\n",
			errMsg:  "rate_limit and rate_window must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
