package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"SCROLLS_STORAGE_DRIVER", "SCROLLS_SQLITE_PATH", "SCROLLS_BLOB_DRIVER",
		"SCROLLS_BLOB_S3_PATH_STYLE", "SCROLLS_HISTORY_LIMIT", "SCROLLS_METRICS_ADDR", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	cfg := FromEnv()
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "./data/scrolls.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "fs", cfg.Blob.Driver)
	assert.Equal(t, "./exports", cfg.Blob.FSRoot)
	assert.False(t, cfg.Blob.S3PathStyle)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.Zero(t, cfg.History.Limit)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SCROLLS_STORAGE_DRIVER", "postgres")
	t.Setenv("SCROLLS_POSTGRES_DSN", "postgres://db/scrolls")
	t.Setenv("SCROLLS_BLOB_DRIVER", "s3")
	t.Setenv("SCROLLS_BLOB_S3_BUCKET", "exports")
	t.Setenv("SCROLLS_BLOB_S3_PATH_STYLE", "true")
	t.Setenv("SCROLLS_HISTORY_LIMIT", "25")
	t.Setenv("SCROLLS_METRICS_ADDR", ":9090")

	cfg := FromEnv()
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "postgres://db/scrolls", cfg.Storage.PostgresDSN)
	assert.Equal(t, "s3", cfg.Blob.Driver)
	assert.Equal(t, "exports", cfg.Blob.S3Bucket)
	assert.True(t, cfg.Blob.S3PathStyle)
	assert.Equal(t, 25, cfg.History.Limit)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestFromEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SCROLLS_HISTORY_LIMIT", "many")
	t.Setenv("SCROLLS_BLOB_S3_PATH_STYLE", "perhaps")
	cfg := FromEnv()
	assert.Zero(t, cfg.History.Limit)
	assert.False(t, cfg.Blob.S3PathStyle)
}

func TestLoadReadsDotEnv(t *testing.T) {
	t.Setenv("SCROLLS_SQLITE_PATH", "")
	require.NoError(t, os.Unsetenv("SCROLLS_SQLITE_PATH"))
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SCROLLS_SQLITE_PATH=/tmp/from-file.db\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", cfg.Storage.SQLitePath)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}
