package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Analyzer  AnalyzerConfig
	Storage   StorageConfig
	Worker    WorkerConfig
	Fetch     FetchConfig
	RateLimit RateLimitConfig
	S3        S3Config
}

type ServerConfig struct {
	Port string
	Env  string
}

type AnalyzerConfig struct {
	TopN int
}

type StorageConfig struct {
	MaxFileSize int64
}

type WorkerConfig struct {
	Concurrency int
	QueueSize   int
}

type FetchConfig struct {
	Timeout  time.Duration
	MaxBytes int64
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: envString("PORT", "3000"),
			Env:  envString("ENV", "development"),
		},
		Analyzer: AnalyzerConfig{
			TopN: envInt("TOP_N", 20),
		},
		Storage: StorageConfig{
			MaxFileSize: envInt64("MAX_FILE_SIZE", 10485760),
		},
		Worker: WorkerConfig{
			Concurrency: envInt("WORKER_CONCURRENCY", 4),
			QueueSize:   envInt("WORKER_QUEUE_SIZE", 100),
		},
		Fetch: FetchConfig{
			Timeout:  envDuration("FETCH_TIMEOUT", 15*time.Second),
			MaxBytes: envInt64("FETCH_MAX_BYTES", 2097152),
		},
		RateLimit: RateLimitConfig{
			Max:    envInt("RATE_LIMIT_MAX", 60),
			Window: envDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		S3: S3Config{
			Endpoint:  envString("S3_ENDPOINT", ""),
			Region:    envString("S3_REGION", "auto"),
			AccessKey: envString("S3_ACCESS_KEY", ""),
			SecretKey: envString("S3_SECRET_KEY", ""),
		},
	}
}

// ObjectStorageEnabled reports whether s3:// resume locations can be served.
func (c *Config) ObjectStorageEnabled() bool {
	return c.S3.Endpoint != "" || (c.S3.AccessKey != "" && c.S3.SecretKey != "")
}

// envOr returns the parsed value of key, or def when key is unset, empty or
// fails to parse. Bad values are logged rather than fatal.
func envOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}

	value, err := parse(raw)
	if err != nil {
		log.Printf("⚠️  Ignoring %s=%q: %v\n", key, raw, err)
		return def
	}
	return value
}

func envString(key, def string) string {
	return envOr(key, def, func(s string) (string, error) { return s, nil })
}

func envInt(key string, def int) int {
	return envOr(key, def, strconv.Atoi)
}

func envInt64(key string, def int64) int64 {
	return envOr(key, def, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func envDuration(key string, def time.Duration) time.Duration {
	return envOr(key, def, time.ParseDuration)
}
