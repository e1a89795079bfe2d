package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	carRepo "rentride/database/repository/car"
	"rentride/models"
	"rentride/services/tasks"
	"rentride/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// HoldService places and releases temporary car reservations so two renters
// cannot check out the same window at once.
type HoldService interface {
	HoldCar(ctx context.Context, carID, renterID string, window models.BookingWindow) (*models.CarHold, error)
	ReleaseCar(ctx context.Context, carID string) error
	GetHold(ctx context.Context, carID string) (*models.CarHold, error)
}

// DefaultHoldService keeps holds in Redis under a TTL and mirrors them onto
// the car document so catalog reads can show held state without touching
// Redis.
type DefaultHoldService struct {
	Cache    *redis.Client
	CarRepo  carRepo.CarRepository
	Enqueuer *asynq.Client
	TTL      time.Duration
	Logger   *zap.Logger
}

func holdKey(carID string) string {
	return utils.HoldKeyPrefix + carID
}

// HoldCar atomically claims the car. SetNX is the arbiter: the first renter
// in wins, later calls see ErrCarAlreadyHeld until the TTL lapses or the
// booking confirms. A renter re-holding their own car (window edits) simply
// refreshes the hold.
func (s *DefaultHoldService) HoldCar(ctx context.Context, carID, renterID string, window models.BookingWindow) (*models.CarHold, error) {
	hold := models.CarHold{
		CarID:     carID,
		RenterID:  renterID,
		Window:    window,
		ExpiresAt: time.Now().Add(s.TTL),
	}
	data, err := json.Marshal(hold)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hold: %w", err)
	}

	claimed, err := s.Cache.SetNX(ctx, holdKey(carID), data, s.TTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to store hold for car %s: %w", carID, err)
	}
	if !claimed {
		existing, err := s.GetHold(ctx, carID)
		if err != nil {
			return nil, err
		}
		if existing == nil || existing.RenterID != renterID {
			return nil, ErrCarAlreadyHeld
		}
		// Same renter adjusting the window: refresh in place.
		if err := s.Cache.Set(ctx, holdKey(carID), data, s.TTL).Err(); err != nil {
			return nil, fmt.Errorf("failed to refresh hold for car %s: %w", carID, err)
		}
	}

	if err := s.CarRepo.SetHeldUntil(carID, hold.ExpiresAt); err != nil {
		s.Logger.Warn("failed to mirror hold onto car document",
			zap.String("carId", carID), zap.Error(err))
	}

	task, opts, err := tasks.NewHoldReleaseTask(models.HoldReleasePayload{
		CarID:    carID,
		RenterID: renterID,
	}, hold.ExpiresAt)
	if err != nil {
		s.Logger.Warn("failed to build hold release task", zap.Error(err))
	} else if _, err := s.Enqueuer.Enqueue(task, opts...); err != nil {
		// The Redis TTL still expires the hold; only the mirror cleanup is lost.
		s.Logger.Warn("failed to enqueue hold release task",
			zap.String("carId", carID), zap.Error(err))
	}

	return &hold, nil
}

// ReleaseCar drops the hold key and clears the car document mirror.
func (s *DefaultHoldService) ReleaseCar(ctx context.Context, carID string) error {
	if err := s.Cache.Del(ctx, holdKey(carID)).Err(); err != nil {
		return fmt.Errorf("failed to release hold for car %s: %w", carID, err)
	}
	if err := s.CarRepo.ClearHeldUntil(carID); err != nil {
		s.Logger.Warn("failed to clear hold mirror on car document",
			zap.String("carId", carID), zap.Error(err))
	}
	return nil
}

// GetHold returns the active hold on a car, or nil when none exists.
func (s *DefaultHoldService) GetHold(ctx context.Context, carID string) (*models.CarHold, error) {
	data, err := s.Cache.Get(ctx, holdKey(carID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read hold for car %s: %w", carID, err)
	}
	var hold models.CarHold
	if err := json.Unmarshal([]byte(data), &hold); err != nil {
		return nil, fmt.Errorf("failed to parse hold for car %s: %w", carID, err)
	}
	return &hold, nil
}
