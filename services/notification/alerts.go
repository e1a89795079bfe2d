package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rentride/models"
	"rentride/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AlertService is the channel user-visible notifications flow through. An
// alert with Duration 0 stays on screen until dismissed.
type AlertService interface {
	Push(ctx context.Context, renterID string, alert models.Alert) error
	Feed(ctx context.Context, renterID string) ([]models.Alert, error)
}

// DefaultAlertService keeps a capped per-renter alert feed in Redis.
type DefaultAlertService struct {
	Cache  *redis.Client
	Logger *zap.Logger
}

func feedKey(renterID string) string {
	return utils.AlertKeyPrefix + renterID
}

// Push appends an alert to the renter's feed, trimming to the cap.
func (s *DefaultAlertService) Push(ctx context.Context, renterID string, alert models.Alert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}

	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	key := feedKey(renterID)
	pipe := s.Cache.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, utils.AlertFeedMax-1)
	pipe.Expire(ctx, key, utils.AlertFeedTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push alert for renter %s: %w", renterID, err)
	}

	s.Logger.Info("alert pushed",
		zap.String("renterId", renterID),
		zap.String("type", alert.Type),
		zap.String("title", alert.Title))
	return nil
}

// Feed returns the renter's alerts, newest first.
func (s *DefaultAlertService) Feed(ctx context.Context, renterID string) ([]models.Alert, error) {
	entries, err := s.Cache.LRange(ctx, feedKey(renterID), 0, utils.AlertFeedMax-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read alert feed for renter %s: %w", renterID, err)
	}

	alerts := make([]models.Alert, 0, len(entries))
	for _, entry := range entries {
		var alert models.Alert
		if err := json.Unmarshal([]byte(entry), &alert); err != nil {
			s.Logger.Warn("skipping malformed alert entry", zap.Error(err))
			continue
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}
