// Package infrastructure provides concrete implementations of the interfaces
// defined in core/interfaces: response caches, the outbound HTTP client, and
// the logger.
//
//   - cache/memory: in-process cache on patrickmn/go-cache
//   - cache/redis: shared cache on go-redis
//   - cache/sqlite: file-backed cache on mattn/go-sqlite3
//   - http/standard: net/http client with User-Agent and optional 5xx retries
//   - logger/logrus: logrus logger with optional lumberjack file rotation
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "wiki:parse:en.wikipedia:Go", body, 10*time.Minute)
//	body, err := cache.Get(ctx, "wiki:parse:en.wikipedia:Go")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClientWithOptions(standard.Options{
//	    Timeout:   30 * time.Second,
//	    UserAgent: "ArticleViewer/1.0",
//	})
//	resp, err := client.Get(ctx, url)
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Viewer session opened", map[string]interface{}{
//	    "session_id": id,
//	})
package infrastructure
