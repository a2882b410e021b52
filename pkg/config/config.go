// Package config loads runtime settings from an optional .env file and the
// process environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Storage StorageConfig
	Blob    BlobConfig
	Log     LogConfig
	Metrics MetricsConfig
	History HistoryConfig
}

type StorageConfig struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
}

type BlobConfig struct {
	Driver      string
	FSRoot      string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	// Addr is the listen address of the /metrics endpoint. Empty disables it.
	Addr string
}

type HistoryConfig struct {
	Limit int
}

// Load reads the given .env files (default ".env") when present, then builds
// a Config from the environment. Missing files are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:      getEnv("SCROLLS_STORAGE_DRIVER", "sqlite"),
			SQLitePath:  getEnv("SCROLLS_SQLITE_PATH", "./data/scrolls.db"),
			PostgresDSN: getEnv("SCROLLS_POSTGRES_DSN", ""),
		},
		Blob: BlobConfig{
			Driver:      getEnv("SCROLLS_BLOB_DRIVER", "fs"),
			FSRoot:      getEnv("SCROLLS_BLOB_FS_ROOT", "./exports"),
			S3Bucket:    getEnv("SCROLLS_BLOB_S3_BUCKET", ""),
			S3Region:    getEnv("SCROLLS_BLOB_S3_REGION", "us-east-1"),
			S3Endpoint:  getEnv("SCROLLS_BLOB_S3_ENDPOINT", ""),
			S3PathStyle: getEnvAsBool("SCROLLS_BLOB_S3_PATH_STYLE", false),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("SCROLLS_METRICS_ADDR", ""),
		},
		History: HistoryConfig{
			Limit: getEnvAsInt("SCROLLS_HISTORY_LIMIT", 0),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
