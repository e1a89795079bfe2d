package utils

import (
	"context"
	"sync"
	"time"

	"rentride/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// The server keeps its key spaces apart with one Redis client per logical
// DB: general caching, car holds, and renter alert feeds.
var (
	cacheClient *redis.Client
	holdClient  *redis.Client
	alertClient *redis.Client
	redisOnce   sync.Once
)

func dialRedis(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Fatal("redis unreachable",
			zap.String("client", label), zap.Int("db", db), zap.Error(err))
	}
	return client
}

// InitRedis brings up every Redis client the server uses. Safe to call
// more than once; the getters below also trigger it lazily.
func InitRedis() {
	redisOnce.Do(func() {
		cacheClient = dialRedis(config.AppConfig.RedisCacheDB, "cache")
		holdClient = dialRedis(config.AppConfig.RedisHoldDB, "hold")
		alertClient = dialRedis(config.AppConfig.RedisAlertDB, "alert")
	})
}

// GetCacheClient returns the general-purpose cache client.
func GetCacheClient() *redis.Client {
	InitRedis()
	return cacheClient
}

// GetHoldCacheClient returns the client for car hold keys.
func GetHoldCacheClient() *redis.Client {
	InitRedis()
	return holdClient
}

// GetAlertCacheClient returns the client for renter alert feeds.
func GetAlertCacheClient() *redis.Client {
	InitRedis()
	return alertClient
}
