package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rentride/config"
	carRepo "rentride/database/repository/car"
	"rentride/models"
	"rentride/services/tasks"
	"rentride/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitHoldReleaseWorker starts the asynq consumer that expires car holds.
// The worker retries startup a few times with backoff before giving up, so
// a Redis that comes up slightly after the app does not kill the process.
func InitHoldReleaseWorker(cars carRepo.CarRepository) {
	logger := utils.GetLogger().Named("hold-release-worker")

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeHoldRelease, handleHoldReleaseTask(cars, logger))

	go watchTaskQueueRedis(logger)

	go func() {
		const maxAttempts = 5
		logger.Info("starting hold release worker")
		for attempt := 1; ; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			if attempt == maxAttempts {
				logger.Fatal("worker failed to start", zap.Int("attempts", attempt), zap.Error(err))
			}
			logger.Warn("worker start failed, retrying",
				zap.Int("attempt", attempt), zap.Error(err))
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

// shouldClearMirror maps the hold key lookup result to a decision. A nil
// error means the key is still alive (clock skew), so the TTL finishes the
// job. redis.Nil means the hold expired and the mirror must be cleared.
// Anything else is a real Redis failure and must bubble up so asynq
// retries the task instead of leaving the mirror stale.
func shouldClearMirror(err error) (bool, error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, redis.Nil):
		return true, nil
	default:
		return false, err
	}
}

// handleHoldReleaseTask clears the denormalized hold marker once the Redis
// TTL has lapsed.
func handleHoldReleaseTask(cars carRepo.CarRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.HoldReleasePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid hold release payload", zap.Error(err))
			return err
		}

		holdCache := utils.GetHoldCacheClient()
		expired, err := shouldClearMirror(holdCache.Get(ctx, utils.HoldKeyPrefix+p.CarID).Err())
		if err != nil {
			logger.Warn("hold key lookup failed, leaving task for retry",
				zap.String("carId", p.CarID), zap.Error(err))
			return err
		}
		if !expired {
			logger.Debug("hold still active, skipping", zap.String("carId", p.CarID))
			return nil
		}

		if err := cars.ClearHeldUntil(p.CarID); err != nil {
			logger.Error("failed to clear hold marker",
				zap.String("carId", p.CarID), zap.Error(err))
			return err
		}
		logger.Info("hold marker cleared", zap.String("carId", p.CarID))
		return nil
	}
}

// watchTaskQueueRedis pings the task queue's Redis so connectivity loss
// shows up in the logs before tasks start piling up.
func watchTaskQueueRedis(logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	ctx := context.Background()
	for range ticker.C {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("task queue redis unreachable", zap.Error(err))
		}
	}
}
