package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 1500*time.Millisecond, cfg.Insight.Delay())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: postgres
  postgres:
    host: db.internal
    port: 5433
    user: canteen
    password: secret
    database: canteen
logging:
  level: debug
insight:
  delay_ms: 10
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "db.internal", cfg.Storage.Postgres.Host)
	assert.Equal(t, 5433, cfg.Storage.Postgres.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 10*time.Millisecond, cfg.Insight.Delay())
	// Untouched sections keep their defaults.
	assert.Equal(t, "canteen.db", cfg.Storage.SQLite.Path)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "storage:\n  driver: redis\n"},
		{"negative delay", "insight:\n  delay_ms: -1\n"},
		{"postgres without host", "storage:\n  driver: postgres\n  postgres:\n    host: \"\"\n"},
		{"not yaml", "{{{"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}
