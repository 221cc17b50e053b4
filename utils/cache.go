// File: utils/cache.go
package utils

import (
	"context"
	"sync"
	"time"

	"doctorsportal/config"

	"github.com/go-redis/redis/v8"
)

// RoleCachePrefix is the prefix used for Redis role cache keys.
const RoleCachePrefix = "role:"

// RoleCacheTTL is the time-to-live for role cache entries.
const RoleCacheTTL = 5 * time.Minute

var (
	roleCacheClient *redis.Client
	roleCacheOnce   sync.Once
)

// InitRoleCache initializes the Redis client used to cache admin-role lookups.
// Redis is best-effort here: if it cannot be reached the client stays nil and
// callers fall back to the database.
func InitRoleCache() {
	roleCacheOnce.Do(initRoleCache)
}

func initRoleCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRoleCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Sugar().Warnf("Role cache disabled, Redis unreachable: %v", err)
		return
	}
	roleCacheClient = client
}

// GetRoleCacheClient returns the Redis client for role caching, or nil when
// the cache is disabled.
func GetRoleCacheClient() *redis.Client {
	roleCacheOnce.Do(initRoleCache)
	return roleCacheClient
}
