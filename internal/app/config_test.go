package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadConfig(home, filepath.Join(home, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, filepath.Join(home, "collections.json"), cfg.Data.Path)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "warning", cfg.Logging.Level)
}

func TestLoadConfig_ReadsValues(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	content := `backend: redis
redis:
  addr: "redis.internal:6380"
  db: 2
logging:
  level: debug`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(home, path)
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Defaults still fill the gaps.
	assert.Equal(t, filepath.Join(home, "collections.json"), cfg.Data.Path)
}

func TestLoadConfig_RejectsUnknownBackend(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: gsheets"), 0o600))

	_, err := LoadConfig(home, path)
	assert.ErrorContains(t, err, "unknown backend")
}

func TestLoadConfig_RejectsBadLogLevel(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud"), 0o600))

	_, err := LoadConfig(home, path)
	assert.ErrorContains(t, err, "invalid log level")
}
