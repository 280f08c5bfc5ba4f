package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "TOP_N", "MAX_FILE_SIZE", "WORKER_CONCURRENCY", "FETCH_TIMEOUT", "RATE_LIMIT_WINDOW", "S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 20, cfg.Analyzer.TopN)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 4, cfg.Worker.Concurrency)
	assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "auto", cfg.S3.Region)
	assert.False(t, cfg.ObjectStorageEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("TOP_N", "10")
	t.Setenv("WORKER_CONCURRENCY", "2")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Analyzer.TopN)
	assert.Equal(t, 2, cfg.Worker.Concurrency)
	assert.Equal(t, 3*time.Second, cfg.Fetch.Timeout)
	assert.True(t, cfg.ObjectStorageEnabled())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TOP_N", "many")
	t.Setenv("FETCH_TIMEOUT", "soon")
	t.Setenv("MAX_FILE_SIZE", "10MB")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, 20, cfg.Analyzer.TopN)
	assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, "3000", cfg.Server.Port)
}
