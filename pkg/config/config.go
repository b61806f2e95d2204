// ABOUTME: Configuration management for the article viewer with environment variable support
// ABOUTME: Defines server, cache, wiki source, viewer session, and logging settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	Wiki   WikiConfig
	Viewer ViewerConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration

	// RateLimit is the number of API requests allowed per client per RateWindow
	RateLimit int

	// RateWindow is the rate limiting window
	RateWindow time.Duration

	// CORSOrigins lists allowed origins; "*" allows any
	CORSOrigins []string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	Redis  RedisConfig
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key written by this service
	KeyPrefix string
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// WikiConfig holds settings for the remote article sources
type WikiConfig struct {
	// DiffServiceBase is the base URL of the authorship-diff service
	DiffServiceBase string

	// Timeout is the per-request HTTP timeout
	Timeout time.Duration

	// RequestsPerSecond limits outbound requests; 0 means unlimited
	RequestsPerSecond float64

	// Burst is the outbound limiter burst
	Burst int

	// UserAgent is sent with every outbound request
	UserAgent string

	// CacheTTL is how long source responses are cached
	CacheTTL time.Duration

	// Attempts is the number of tries for a request that fails with a 5xx
	Attempts int
}

// ViewerConfig holds viewer session settings
type ViewerConfig struct {
	// Palette is the ordered list of author colors
	Palette []string

	// SessionTTL is how long an untouched session lives
	SessionTTL time.Duration

	// Workers is the number of fetch workers
	Workers int

	// QueueSize is the fetch queue capacity
	QueueSize int
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File, when set, receives logs through a rotating writer
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			ShutdownTimeout: getEnvAsDurationOrDefault("SHUTDOWN_TIMEOUT", 30*time.Second),
			RateLimit:       getEnvAsIntOrDefault("RATE_LIMIT", 120),
			RateWindow:      getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
			CORSOrigins:     getEnvAsListOrDefault("CORS_ORIGINS", []string{"*"}),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "article-viewer:"),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "article-viewer-cache.db"),
			},
		},
		Wiki: WikiConfig{
			DiffServiceBase:   getEnvOrDefault("DIFF_SERVICE_BASE", "https://api.wikicolor.net"),
			Timeout:           getEnvAsDurationOrDefault("WIKI_TIMEOUT", 30*time.Second),
			RequestsPerSecond: getEnvAsFloatOrDefault("WIKI_REQUESTS_PER_SECOND", 10),
			Burst:             getEnvAsIntOrDefault("WIKI_BURST", 5),
			UserAgent:         getEnvOrDefault("WIKI_USER_AGENT", "ArticleViewer/1.0"),
			CacheTTL:          getEnvAsDurationOrDefault("WIKI_CACHE_TTL", 10*time.Minute),
			Attempts:          getEnvAsIntOrDefault("WIKI_ATTEMPTS", 1),
		},
		Viewer: ViewerConfig{
			Palette:    getEnvAsListOrDefault("VIEWER_PALETTE", []string{"red", "blue", "green", "yellow"}),
			SessionTTL: getEnvAsDurationOrDefault("VIEWER_SESSION_TTL", 30*time.Minute),
			Workers:    getEnvAsIntOrDefault("VIEWER_WORKERS", 8),
			QueueSize:  getEnvAsIntOrDefault("VIEWER_QUEUE_SIZE", 64),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("90s") or plain seconds ("90")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma separated value, dropping blanks
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}
	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1")
	}
	if c.Server.RateWindow <= 0 {
		return errors.New("rate window must be positive")
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if !strings.HasPrefix(c.Wiki.DiffServiceBase, "http://") && !strings.HasPrefix(c.Wiki.DiffServiceBase, "https://") {
		return fmt.Errorf("diff service base must be an http(s) URL, got %q", c.Wiki.DiffServiceBase)
	}
	if c.Wiki.Timeout <= 0 {
		return errors.New("wiki timeout must be positive")
	}
	if c.Wiki.RequestsPerSecond < 0 {
		return errors.New("wiki requests per second cannot be negative")
	}
	if c.Wiki.Attempts < 1 {
		return errors.New("wiki attempts must be at least 1")
	}

	if len(c.Viewer.Palette) == 0 {
		return errors.New("viewer palette cannot be empty")
	}
	if c.Viewer.Workers < 1 {
		return errors.New("viewer workers must be at least 1")
	}
	if c.Viewer.QueueSize < 1 {
		return errors.New("viewer queue size must be at least 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}

	return nil
}
