package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the last observed state of the service's backing stores.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var healthState struct {
	mu      sync.RWMutex
	current HealthStatus
}

// GetHealthStatus returns the latest snapshot taken by the monitor.
func GetHealthStatus() HealthStatus {
	healthState.mu.RLock()
	defer healthState.mu.RUnlock()
	return healthState.current
}

// StartHealthMonitor pings every backing store once a minute and records
// the result. Each ping gets its own short deadline so a hung store cannot
// stall the whole sweep.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			snapshot := HealthStatus{CheckedAt: time.Now()}
			for _, client := range redisClients {
				snapshot.Redis = append(snapshot.Redis, pingRedis(client))
			}
			snapshot.Mongo = pingMongo(mongoClient)

			healthState.mu.Lock()
			healthState.current = snapshot
			healthState.mu.Unlock()
		}
	}()
}

func pingRedis(client *redis.Client) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}

func pingMongo(client *mongo.Client) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx, nil) == nil
}
