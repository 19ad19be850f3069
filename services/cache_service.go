package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"javajam_server/config"
	"javajam_server/structs"
	"javajam_server/structs/tables"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

const productCatalogKey = "javajam:products:all"

// CacheService provides Redis caching for the product catalog and the
// rate limiter's counters. The sales report is deliberately never
// cached; it is recomputed on every load.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling.
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool.
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// GetProducts returns the cached product catalog, or nil on a miss.
func (cs *CacheService) GetProducts() ([]tables.Product, error) {
	raw, err := cs.client.Get(redisCtx, productCatalogKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read product cache: %w", err)
	}

	var products []tables.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		// A corrupt entry behaves like a miss; the next write repairs it.
		cs.logger.Warn("Corrupt product cache entry, treating as miss", gecho.Field("error", err))
		return nil, nil
	}
	return products, nil
}

// SetProducts stores the product catalog with the configured TTL.
func (cs *CacheService) SetProducts(products []tables.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal products for cache: %w", err)
	}

	if err := cs.client.Set(redisCtx, productCatalogKey, raw, cs.config.Cache.ProductTTL).Err(); err != nil {
		return fmt.Errorf("failed to write product cache: %w", err)
	}
	return nil
}

// InvalidateProducts drops the cached catalog. Called synchronously
// after every price update so the menu and the price screen observe the
// same data they would without the cache.
func (cs *CacheService) InvalidateProducts() error {
	if err := cs.client.Del(redisCtx, productCatalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate product cache: %w", err)
	}
	return nil
}

// IncrementRateLimit bumps the request counter for an ip/endpoint pair
// and returns the count within the current window.
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, window time.Duration) (int, error) {
	key := fmt.Sprintf("javajam:ratelimit:%s:%s", ip, endpoint)

	count, err := cs.client.Incr(redisCtx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// Only the first hit in a window sets the expiry.
	if count == 1 {
		if err := cs.client.Expire(redisCtx, key, window).Err(); err != nil {
			cs.logger.Warn("Failed to set rate limit expiry", gecho.Field("key", key), gecho.Field("error", err))
		}
	}

	return int(count), nil
}

// Ping checks cache connectivity.
func (cs *CacheService) Ping() error {
	return cs.client.Ping(redisCtx).Err()
}

// Stats returns connection pool statistics for the debug endpoint.
func (cs *CacheService) Stats() map[string]any {
	stats := cs.client.PoolStats()
	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
